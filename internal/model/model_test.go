package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestVariantFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  Variant
	}{
		{"T&M", VariantTimeAndMaterials},
		{"Time & Materials", VariantTimeAndMaterials},
		{"time and materials", VariantTimeAndMaterials},
		{"Fixed-Fee", VariantFixedFee},
		{"FIXED FEE", VariantFixedFee},
		{"fee-based", VariantFixedFee},
		{"Retainer", VariantUnknown},
		{"", VariantUnknown},
		{"Unable to determine - JSON parsing failed", VariantUnknown},
	}

	for _, tc := range cases {
		if got := VariantFromLabel(tc.label); got != tc.want {
			t.Errorf("VariantFromLabel(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityMedium.Rank() {
		t.Error("high should outrank medium")
	}
	if SeverityMedium.Rank() <= SeverityLow.Rank() {
		t.Error("medium should outrank low")
	}
	if SeverityLow.Rank() <= SeverityNone.Rank() {
		t.Error("low should outrank none")
	}
	if Severity("critical").Rank() != 0 {
		t.Error("unknown severity should rank as none")
	}
}

func TestIssueWireShape(t *testing.T) {
	raw := `{"section": "Compensation", "issue_number": 2, "description": "d", "severity": "high", "suggested_resolution": "r"}`

	var issue Issue
	if err := json.Unmarshal([]byte(raw), &issue); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if issue.Section != "Compensation" || issue.IssueNumber != 2 || issue.Severity != SeverityHigh {
		t.Errorf("unexpected issue: %+v", issue)
	}
}

func TestSectionMapping_Target(t *testing.T) {
	m := &SectionMapping{Targets: map[string]string{"Header": "HEADER"}}

	if got, ok := m.Target("Header"); !ok || got != "HEADER" {
		t.Errorf("Target(Header) = %q, %v", got, ok)
	}
	if _, ok := m.Target("Exhibits"); ok {
		t.Error("unmapped section should not resolve")
	}

	var nilMapping *SectionMapping
	if _, ok := nilMapping.Target("Header"); ok {
		t.Error("nil mapping should not resolve")
	}
}

func TestRunState_Reset(t *testing.T) {
	s := NewRunState()
	if s.Phase != PhaseIdle {
		t.Errorf("new state should be idle, got %s", s.Phase)
	}

	s.Phase = PhaseComplete
	s.Classification = &Classification{Label: "T&M"}
	s.Mapping = &SectionMapping{}
	s.Report = &Report{}
	s.Warn("something")

	s.Reset()

	if s.Phase != PhaseIdle || s.Classification != nil || s.Mapping != nil || s.Report != nil || s.Warnings != nil {
		t.Errorf("Reset left state behind: %+v", s)
	}
}

func TestDefaultConfig_CacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cfg := DefaultConfig()
	if cfg.Cache.Dir == "" {
		t.Fatal("default cache dir should not be empty when a home directory exists")
	}
	if want := filepath.Join(home, ".sowcheck", "cache"); cfg.Cache.Dir != want {
		t.Errorf("cache dir = %q, want %q", cfg.Cache.Dir, want)
	}
}

func TestUnknownClassification(t *testing.T) {
	cls := UnknownClassification()
	if cls.Variant != VariantUnknown || !cls.LowConfidence {
		t.Errorf("unexpected unknown classification: %+v", cls)
	}
}
