// Package concepts surfaces candidate subjects from free text using a fixed
// catalog of verb+object templates.
package concepts

import (
	"strings"

	"github.com/roivaz/commitdraft/internal/signals"
)

// Catalog is the built-in concept catalog; each signal label is the concept
// name and the first capture group is its subject.
var Catalog = signals.Catalog{
	signals.MustNew("hook", `hooks?\s+(?:for|to)\s+(\w+)`, "hook"),
	signals.MustNew("automation", `automat(?:e|ing|ion)\s+(\w+)`, "automation"),
	signals.MustNew("integration", `integrat(?:e|ing|ion)\s+(?:with\s+)?(\w+)`, "integration"),
	signals.MustNew("analysis", `analyz(?:e|ing|is)\s+(\w+)`, "analysis"),
	signals.MustNew("generation", `generat(?:e|ing|ion)\s+(?:of\s+)?(\w+)`, "generation"),
	signals.MustNew("parsing", `pars(?:e|ing)\s+(\w+)`, "parsing"),
	signals.MustNew("validation", `validat(?:e|ing|ion)\s+(?:of\s+)?(\w+)`, "validation"),
	signals.MustNew("optimization", `optimiz(?:e|ing|ation)\s+(?:of\s+)?(\w+)`, "optimization"),
}

// Extract returns "<concept> for <subject>" for every match in text, ordered
// by catalog then by position. Duplicates are kept.
func Extract(text string) []string {
	return ExtractWith(Catalog, text)
}

// ExtractWith is Extract with a caller-supplied catalog.
func ExtractWith(catalog signals.Catalog, text string) []string {
	matches := catalog.Captures(strings.ToLower(text))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Signal.Label+" for "+m.Subject)
	}
	return out
}
