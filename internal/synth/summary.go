package synth

import (
	"fmt"
	"strings"

	"github.com/roivaz/commitdraft/internal/signals"
)

// Rule identifiers.
const (
	RuleFunctionsAdded    = "functions-added"
	RuleFunctionsModified = "functions-modified"
	RuleClassesAdded      = "classes-added"
	RuleClassesModified   = "classes-modified"
	RulePattern           = "pattern"
	RuleImport            = "import"
	RuleCommitFocus       = "commit-focus"
	RuleStageOnly         = "stage-only"
	RuleConcept           = "concept"
	RuleFallback          = "fallback"
)

// Rule turns an Input into zero or more summary sentences.
type Rule struct {
	Name  string
	Apply func(in Input) []string
}

// importCatalog flags notable modules among added imports. An import
// contributes the label of its first matching signal.
var importCatalog = signals.Catalog{
	signals.MustNew("ui-automation", `pyautogui|robotgo`, "Integrated pyautogui for UI automation"),
	signals.MustNew("process", `subprocess|os/exec|child_process`, "Added subprocess handling for system commands"),
	signals.MustNew("structured-data", `json`, "Implemented JSON data persistence"),
	signals.MustNew("diff-tooling", `difflib|go-diff|go-difflib`, "Added diff analysis capabilities"),
}

func defaultRules(patternLimit int) []Rule {
	return []Rule{
		{Name: RuleFunctionsAdded, Apply: func(in Input) []string {
			switch n := len(in.Facts.FunctionsAdded); {
			case n == 1:
				return []string{fmt.Sprintf("Implemented %s function", in.Facts.FunctionsAdded[0])}
			case n > 1:
				return []string{fmt.Sprintf("Added %d new functions for enhanced functionality", n)}
			}
			return nil
		}},
		{Name: RuleFunctionsModified, Apply: func(in Input) []string {
			if len(in.Facts.FunctionsModified) == 0 {
				return nil
			}
			return []string{"Refactored existing functions to improve " + in.Facts.FunctionsModified[0]}
		}},
		{Name: RuleClassesAdded, Apply: func(in Input) []string {
			if len(in.Facts.ClassesAdded) == 0 {
				return nil
			}
			return []string{fmt.Sprintf("Created %s class structure", in.Facts.ClassesAdded[0])}
		}},
		{Name: RuleClassesModified, Apply: func(in Input) []string {
			if len(in.Facts.ClassesModified) == 0 {
				return nil
			}
			return []string{fmt.Sprintf("Updated %s class implementation", in.Facts.ClassesModified[0])}
		}},
		{Name: RulePattern, Apply: func(in Input) []string {
			patterns := in.Facts.Patterns
			if len(patterns) > patternLimit {
				patterns = patterns[:patternLimit]
			}
			return patterns
		}},
		{Name: RuleImport, Apply: importPoints},
		{Name: RuleCommitFocus, Apply: func(in Input) []string {
			prompt := strings.ToLower(in.Context.LastPrompt)
			if strings.Contains(prompt, "commit") && strings.Contains(prompt, "message") {
				return []string{"Focuses on generating meaningful commit messages"}
			}
			return nil
		}},
		{Name: RuleStageOnly, Apply: func(in Input) []string {
			prompt := strings.ToLower(in.Context.LastPrompt)
			if strings.Contains(prompt, "stage") && strings.Contains(prompt, "not") && strings.Contains(prompt, "commit") {
				return []string{"Stages changes without auto-committing for review"}
			}
			return nil
		}},
		{Name: RuleConcept, Apply: func(in Input) []string {
			if len(in.Concepts) == 0 {
				return nil
			}
			return []string{"Addresses " + in.Concepts[0]}
		}},
	}
}

// importPoints reports each notable import signature once, in the order the
// imports were added.
func importPoints(in Input) []string {
	var out []string
	seen := make(map[string]bool)
	for _, imp := range in.Facts.ImportsAdded {
		sig, ok := importCatalog.First(imp)
		if !ok || seen[sig.Name] {
			continue
		}
		seen[sig.Name] = true
		out = append(out, sig.Label)
	}
	return out
}

// Points evaluates every rule in order, deduplicates, applies the fallback
// and caps the result.
func (s *Synthesizer) Points(in Input) []Point {
	var points []Point
	for _, rule := range s.rules {
		for _, text := range rule.Apply(in) {
			points = append(points, Point{Text: text, Rule: rule.Name})
		}
	}
	points = Dedup(points, s.similarity)

	if len(points) == 0 {
		if n := len(in.Facts.FilesModified); n > 0 {
			points = append(points, Point{Text: fmt.Sprintf("Modified %d files", n), Rule: RuleFallback})
		} else {
			points = append(points, Point{Text: "No file changes detected", Rule: RuleFallback})
		}
	}

	if len(points) > s.maxBullets {
		points = points[:s.maxBullets]
	}
	return points
}
