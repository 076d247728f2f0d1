package catalog

import "github.com/rpatil/sowcheck/internal/model"

// fixedFeeRules is the Fixed-Fee rule set. It overlaps the T&M sections but
// carries variant-specific questions and adds the deliverables exhibit,
// which is mandatory for Fixed-Fee SOWs.
var fixedFeeRules = []model.Rule{
	{
		Section:        "Header",
		RetrievalQuery: "Retrieve the Header section of the SOW containing Supplier Name, SOW Start Date/Effective Date, Client Name, MSA Start Date",
		Questions: []string{
			"Supplier Name: Does the header section contain a supplier name, and is it consistent with other contract documents?",
			"SOW Start Date: Does the header section contain a SOW start date? Provide the date if present. Only report issues if dates are missing or if they conflict with other contract documents",
			"Client Name: Does the header section contain a client name, and is it consistent with other contract documents?",
			"MSA Start Date: Does the header section contain a MSA start date? Provide the date if present. If value is provided, SOW start date can be same as MSA date or after the MSA date. Only report issues if dates are missing or if they conflict with other contract documents",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "SOW Term",
		RetrievalQuery: "Retrieve the SOW Term section containing SOW End Date/SOW Completion Date",
		Questions: []string{
			"SOW End date: Does the sow term section contain a SOW end date/SOW completion date? Provide the date if present. If value is provided, sow end date should be after the sow start date. Only report issues if dates are missing or they are before the sow start date or if they conflict with other contract documents",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Scope of Services",
		RetrievalQuery: "Retrieve the most relevant chunks for Scope of Services section",
		Questions: []string{
			"Project Overview: Does the scope of services section contain project overview with clear and precise language? If overview present, does it have a project name?",
			"Project Scope: Does the scope of services section contain project scope with clear and precise language?",
			"Out-of-Scope Work: Does the scope of services section contain out-of-scope work with clear and precise language? If it is not present in the section, assign medium severity",
			"Assumptions: Does the scope of services section contain assumptions which are made in preparing the SOW (that contain dependencies and constraints, risks and mitigation strategies)? If assumptions are not mentioned, assign medium severity",
			"Resource Name: Does the scope of service section contain resource name (person name who will be working)? If it is not mentioned, assign low severity",
			"Role: Does the scope of service section contain role (role title/skill of the resource e.g. BI Developer (Power BI))? If it is not mentioned, assign high severity",
			"Delivery Location: Does the scope of service section contain delivery location (resource location)? If it is not mentioned, assign medium severity",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Compensation",
		RetrievalQuery: "Retrieve the most relevant chunks for section compensation including deliverables, milestones, compensation and acceptance criteria.",
		Questions: []string{
			"Is payment terms fixed cost clearly stated with language Total Not to Exceed Fixed Fee basis and the deliverables and milestone section should have milestones/deliverables listed along with the cost of each deliverable and acceptance criteria. If this is not stated clearly, assign high severity",
			"Are deliverables and milestones clearly listed and defined? If not mentioned clearly, assign high severity",
			"Is acceptance criteria - quality standards and metrics, review and testing procedures and quality control measures - clearly stated? If not, assign high severity",
			"Is payment clearly linked to milestones/deliverables? This should include list of deliverable names, detailed description, specification and criteria for completion. If not mentioned clearly, assign high severity",
			"Is the total fixed fee amount clearly listed? If it is not mentioned, assign high severity",
			"Are invoicing terms - payment schedule, method, invoicing condition, and any exceptions - clearly defined? SOW must have a reference to MSA payment terms called out like payment's terms in the agreement. There should NOT be language like Net60, Net30, payment in 30 days, etc phrases. If it is not clearly stated, assign high severity",
			"Does the break of cost given in exhibit Deliverables, Milestones and Compensation add up to the total given in compensation section? Is the total given in the exhibit match with that total cost given in the compensation section?",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Project Assumptions",
		RetrievalQuery: "Retrieve all Project Assumptions-related sections",
		Questions: []string{
			"Are systems, tools, platforms needed for supplier work mentioned? If not, assign high severity",
			"Is information about access to client subject matter experts? If not, assign high severity",
			"Is info about who provides what documentation and in what order given? If not, assign high severity",
			"Is the process for raising and approving change requests (scope, resources, or deliverables change) clearly defined? If not, assign medium severity.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Client Responsibilities",
		RetrievalQuery: "Retrieve the client responsibilities section",
		Questions: []string{
			"Access and Licenses: Does the client responsibilities section specify required access and licenses? If not, assign medium severity.",
			"Support from Analysts/SMEs: Does the client responsibilities section list support from analysts or subject matter experts (SMEs)? If not, assign medium severity.",
		},
		SeverityPolicy: optionalLow,
	},
	{
		Section:        "Change Control Procedure",
		RetrievalQuery: "Retrieve the change control procedure section",
		Questions: []string{
			"Change Control Process: Is the process for handling scope, pricing, or timeline changes (via Change Order) clearly described? If not, assign high severity.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Financial Information",
		RetrievalQuery: "Retrieve only the Financial Information section and verify that exactly one checkbox is selected for Financial Information",
		Questions: []string{
			"Check only the checkbox for financial information if EXACTLY ONE checkbox is marked (either Yes or No, but not both or neither). No need to verify if it's logical.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "PII or PHI",
		RetrievalQuery: "Retrieve only the PII or PHI section and verify that exactly one checkbox is selected for PII or PHI",
		Questions: []string{
			"Check only the checkbox for PII/PHI if EXACTLY ONE checkbox is marked (either Yes or No, but not both or neither). No need to verify if it's logical.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Sensitive Information",
		RetrievalQuery: "Retrieve only the Sensitive Information section and verify that exactly one checkbox is selected for sensitive Information",
		Questions: []string{
			"Check only the checkbox for sensitive information if EXACTLY ONE checkbox is marked (either Yes or No, but not both or neither). No need to verify if it's logical.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		// Same one-or-neither wording as the T&M Access rule.
		Section:        "Access",
		RetrievalQuery: "Retrieve only the Access section and verify that exactly one checkbox is selected for Access",
		Questions: []string{
			"Check only the checkbox for access if checkbox is marked (Yes or No or neither, but not both). No need to verify if it's logical.",
		},
		SeverityPolicy: mandatoryHigh,
	},
	{
		Section:        "Artificial Intelligence",
		RetrievalQuery: "Retrieve only the Artificial Intelligence (AI) section and verify that exactly one checkbox is selected for Artificial Intelligence",
		Questions: []string{
			"Check only the checkbox for artificial intelligence if checkbox is marked (Yes or No or neither, but not both). No need to verify if it's logical.",
		},
		SeverityPolicy: "This section is optional. If this section is not present, assign low severity.",
	},
	{
		Section:        "Exhibits",
		RetrievalQuery: "Retrieve all the chunks related to exhibits to SOW section",
		Questions: []string{
			"Are all referenced exhibits included and properly numbered?",
			"Do exhibit references match the actual exhibits provided?",
			"Is there consistency in exhibit naming and referencing?",
		},
		SeverityPolicy: "This section is optional. If this section is not present, assign low severity.",
	},
	{
		Section:        "Deliverables, Milestones and Compensation",
		RetrievalQuery: "Retrieve all the chunks related to exhibit section Exhibit A-Deliverables, Milestones and Compensation",
		Questions: []string{
			"This section is MANDATORY for Fixed-Fee SOW, if section presents, check the following otherwise flag it with high severity:",
			"Deliverable No.: Are the deliverable numbers provided? If not, assign low severity.",
			"Deliverable/Milestone: Are the deliverables and milestones clearly defined? If not, assign high severity.",
			"Due Date: Is the due date provided? It doesn't have to be a date, it can be week 4, month 2, any kinds of time reference. If not, assign high severity.",
			"Acceptance Criteria: Is acceptance criteria - quality standards and metrics, review and testing procedures and quality control measures - clearly stated? If not, assign high severity.",
			"Invoice Amount: Is invoice amount clearly defined? If not, assign high severity.",
			"Does the sum of all deliverable amounts match the total project cost mentioned in the Compensation section? If not, assign medium severity.",
		},
		SeverityPolicy: "This section is MANDATORY for Fixed-Fee SOW. If it is not present in case of Fixed-Fee SOW, assign high severity.",
	},
	{
		Section:        "Statement of Work Characteristic",
		RetrievalQuery: "Retrieve all the chunks related to section Exhibit B-Statement of Work Characteristic",
		Questions: []string{
			"This section is optional for Fixed-Fee SOW, if section presents, check if Role and Location are provided (Rate is not mandatory for Fixed-Fee). If role or location not provided, assign low severity. If section is not present, flag it with low severity.",
		},
		SeverityPolicy: "This section is optional for Fixed-Fee SOW. If not present in the document, assign low severity.",
	},
	{
		Section:        "Client Change Order Template",
		RetrievalQuery: "Retrieve all the chunks related to section Exhibit C-Client Change Order Template",
		Questions: []string{
			"Supplier Name: Does it contain a supplier name, and is it consistent with other contract documents? If not, assign low severity.",
			"Client Name: Does it contain a client name, and is it consistent with other contract documents? If not, assign low severity.",
			"Project Name: Does it contain a project name? If not, assign low severity.",
			"Change Order #: Does it contain a change order number? If not, assign low severity.",
			"Reason for Change Order: Is the reason for change order clearly defined? If not, assign low severity.",
			"Client Pre Approvers: Does it contain client pre approvers (based on Total Dollar Value of Project including this CO)? If not, assign low severity.",
			"Dollar Amount of Change Order: Is dollar amount of change order clearly stated? If not, assign low severity.",
			"Total Dollar Value of Project including this CO: Is total dollar value of project including this CO clearly stated? If not, assign low severity.",
			"Change Order Submission Date: Does it contain a change order submission date? This should not be before or the same dates as SOW effective date. If not, assign low severity.",
			"Change Order Effective Date: Does it contain a change order effective date? This should not be before or the same date as change order submission date, should not be before or the same dates as SOW effective date. If not, assign low severity.",
			"Change Detail and Impacts: 1) Does it contain a clear Timeline (if any, explain in detail why there is a change in the timeline and what is affecting it)? 2) Scope (if any, explain in detail what scope was added - bullet points) 3) Budget (if any, explain why the budget is impacted and needs to change). If not stated clearly, assign low severity.",
		},
		SeverityPolicy: "This section is optional. If it is not present, assign low severity.",
	},
	{
		Section:        "Additional Terms",
		RetrievalQuery: "Retrieve all the chunks related to Additional Terms",
		Questions: []string{
			"Termination Condition: Is the termination condition clearly defined? If not, assign low severity.",
			"Termination of Specific Resource: Is the termination condition for specific resources clearly defined? If not, assign low severity.",
		},
		SeverityPolicy: "This section is optional. If it is not present, assign low severity.",
	},
	{
		Section:        "Project Oversight",
		RetrievalQuery: "Retrieve all the chunks related to Project Oversight",
		Questions: []string{
			"Supplier Point of Contact: 1) Is contact person name clearly stated? If not, assign high severity. 2) Is email for this contact clearly stated? If not, assign high severity. 3) Is phone number for this contact clearly stated? If not, assign medium severity. 4) Is address for this contact clearly stated? If not, assign medium severity.",
			"Client Point of Contact: 1) Is contact person name clearly stated? If not, assign high severity. 2) Is email for this contact clearly stated? If not, assign high severity. 3) Is phone number for this contact clearly stated? If not, assign medium severity. 4) Is address for this contact clearly stated? If not, assign medium severity.",
		},
		SeverityPolicy: "This section is mandatory. If it is not present, assign high severity.",
	},
}
