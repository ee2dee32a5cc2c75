// Package signals holds ordered catalogs of (matcher, label) pairs used to
// recognize recurring idioms in free text and changed code.
package signals

import (
	"fmt"
	"regexp"
)

// Detector reports which labels of a catalog match text, in catalog order.
type Detector interface {
	Detect(text string) []string
}

// Signal pairs a compiled matcher with the label it contributes.
type Signal struct {
	Name    string
	Label   string
	Pattern *regexp.Regexp
}

// Catalog is an ordered list of signals. Order is significant: it drives
// output order everywhere a catalog is consulted.
type Catalog []Signal

// Match is one capture produced by Catalog.Captures.
type Match struct {
	Signal  Signal
	Subject string
}

// New compiles pattern into a Signal.
func New(name, pattern, label string) (Signal, error) {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return Signal{}, fmt.Errorf("compile signal %q: %w", name, err)
	}
	return Signal{Name: name, Label: label, Pattern: rx}, nil
}

// MustNew is New for package-level catalogs.
func MustNew(name, pattern, label string) Signal {
	s, err := New(name, pattern, label)
	if err != nil {
		panic(err)
	}
	return s
}

// Detect returns the label of every signal whose pattern matches text at
// least once. Each label is reported once, however often it matches.
func (c Catalog) Detect(text string) []string {
	var labels []string
	for _, s := range c {
		if s.Pattern.MatchString(text) {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// First returns the first signal matching text.
func (c Catalog) First(text string) (Signal, bool) {
	for _, s := range c {
		if s.Pattern.MatchString(text) {
			return s, true
		}
	}
	return Signal{}, false
}

// Captures returns the first capture group of every non-overlapping match of
// every signal, ordered by catalog position then by match position.
func (c Catalog) Captures(text string) []Match {
	var out []Match
	for _, s := range c {
		for _, m := range s.Pattern.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			out = append(out, Match{Signal: s, Subject: m[1]})
		}
	}
	return out
}

// Extend returns a new catalog with extra appended after c.
func (c Catalog) Extend(extra ...Signal) Catalog {
	out := make(Catalog, 0, len(c)+len(extra))
	out = append(out, c...)
	return append(out, extra...)
}
