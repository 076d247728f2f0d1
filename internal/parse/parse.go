// Package parse recovers structured JSON from unreliable completion oracle
// output. The oracle is instructed to emit JSON only, but that instruction
// is not enforced server-side, so decoding is staged: each stage is strictly
// more lenient than the last, and total failure is an error value, never a
// panic that could abort a validation run.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when no JSON object could be recovered from the
// raw text. Callers must have an explicit fallback path for it.
var ErrUnparseable = errors.New("no JSON object could be recovered")

var (
	fenceOpen  = regexp.MustCompile("```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("```\\s*$")

	// Light repairs for almost-JSON output.
	trailingComma   = regexp.MustCompile(`,(\s*[}\]])`)
	unquotedKey     = regexp.MustCompile(`(\w+):`)
	doubleQuotedKey = regexp.MustCompile(`""(\w+)"":`)
)

// Parser decodes oracle output, preferring candidates that contain an
// expected top-level key.
type Parser struct {
	wantKey    string
	candidates []*regexp.Regexp
}

// New creates a parser for responses expected to carry the given top-level
// JSON key (e.g. "sow_validation").
func New(wantKey string) *Parser {
	quoted := regexp.QuoteMeta(wantKey)
	return &Parser{
		wantKey: wantKey,
		candidates: []*regexp.Regexp{
			// Complete object containing the expected key at end of text.
			regexp.MustCompile(fmt.Sprintf(`\{[\s\S]*?"%s"[\s\S]*?\}\s*$`, quoted)),
			// Any complete object at end of text.
			regexp.MustCompile(`\{[\s\S]*?\}\s*$`),
			// Object with the expected key followed by an array closure.
			regexp.MustCompile(fmt.Sprintf(`\{[\s\S]*?"%s"[\s\S]*?\][\s\S]*?\}`, quoted)),
		},
	}
}

// Decode recovers a JSON object from raw oracle text into v.
//
// Stages:
//  1. strict decode of the trimmed text
//  2. strip markdown code fences, strict decode again
//  3. regex-extract bracketed candidates in priority order, apply light
//     repairs (trailing commas, unquoted keys, doubly-quoted keys) and
//     decode each; first success wins
//
// If nothing decodes, ErrUnparseable is returned and v is left unmodified.
func (p *Parser) Decode(raw string, v any) error {
	trimmed := strings.TrimSpace(raw)
	if tryDecode(trimmed, v) {
		return nil
	}

	cleaned := fenceOpen.ReplaceAllString(trimmed, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if tryDecode(cleaned, v) {
		return nil
	}

	for _, re := range p.candidates {
		for _, match := range re.FindAllString(cleaned, -1) {
			if tryDecode(repair(strings.TrimSpace(match)), v) {
				return nil
			}
		}
	}

	return ErrUnparseable
}

// tryDecode decodes s into v only when s is well-formed JSON, so a failed
// stage cannot leave v partially populated.
func tryDecode(s string, v any) bool {
	data := []byte(s)
	if !json.Valid(data) {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func repair(s string) string {
	s = trailingComma.ReplaceAllString(s, "${1}")
	s = unquotedKey.ReplaceAllString(s, `"${1}":`)
	s = doubleQuotedKey.ReplaceAllString(s, `"${1}":`)
	return s
}
