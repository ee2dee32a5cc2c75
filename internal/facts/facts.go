package facts

import (
	"strings"

	"github.com/roivaz/commitdraft/internal/diff"
	"github.com/roivaz/commitdraft/internal/signals"
)

// ChangeFacts is what the extractor learned from one diff.
type ChangeFacts struct {
	FunctionsAdded    []string `json:"functions_added"`
	FunctionsModified []string `json:"functions_modified"`
	ClassesAdded      []string `json:"classes_added"`
	ClassesModified   []string `json:"classes_modified"`
	ImportsAdded      []string `json:"imports_added"`
	Patterns          []string `json:"patterns_detected"`
	FilesModified     []string `json:"files_modified"`
}

// Extractor scans changed lines for structural signals.
type Extractor struct {
	patterns signals.Detector
}

// NewExtractor returns an extractor using patterns for implementation-pattern
// detection. A nil detector means DefaultPatterns.
func NewExtractor(patterns signals.Detector) *Extractor {
	if patterns == nil {
		patterns = DefaultPatterns
	}
	return &Extractor{patterns: patterns}
}

// Extract runs the default extractor over a segmented diff.
func Extract(seg diff.Segmented) ChangeFacts {
	return NewExtractor(nil).Extract(seg)
}

// Extract builds ChangeFacts from seg. It accepts any input.
//
// A definition is "modified" when its name occurs as a substring of any
// removed line, otherwise "added". This is a heuristic: a name that merely
// appears in an unrelated removed line is still reported as modified.
func (e *Extractor) Extract(seg diff.Segmented) ChangeFacts {
	out := ChangeFacts{FilesModified: seg.Paths()}

	var fnAdded, fnModified, clsAdded, clsModified orderedSet
	for _, line := range seg.Added {
		if m := definitionRegexp.FindStringSubmatch(line); m != nil {
			if isModified(m[1], seg.Removed) {
				fnModified.add(m[1])
			} else {
				fnAdded.add(m[1])
			}
		}
		if m := classRegexp.FindStringSubmatch(line); m != nil {
			if isModified(m[1], seg.Removed) {
				clsModified.add(m[1])
			} else {
				clsAdded.add(m[1])
			}
		}
		if importRegexp.MatchString(line) {
			out.ImportsAdded = append(out.ImportsAdded, strings.TrimSpace(line))
		}
	}
	out.FunctionsAdded = fnAdded.items
	out.FunctionsModified = fnModified.items
	out.ClassesAdded = clsAdded.items
	out.ClassesModified = clsModified.items

	changed := make([]string, 0, len(seg.Added)+len(seg.Removed))
	changed = append(changed, seg.Added...)
	changed = append(changed, seg.Removed...)
	out.Patterns = e.patterns.Detect(strings.Join(changed, "\n"))

	return out
}

func isModified(name string, removed []string) bool {
	for _, line := range removed {
		if strings.Contains(line, name) {
			return true
		}
	}
	return false
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
