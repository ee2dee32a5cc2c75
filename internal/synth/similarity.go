package synth

import "strings"

// Similarity decides whether two summary points express the same concept.
type Similarity interface {
	Similar(a, b string) bool
}

// SharedWords treats two points as the same when the sets of lower-cased,
// whitespace-separated words they share hold more than Threshold words.
type SharedWords struct {
	Threshold int
}

func (s SharedWords) Similar(a, b string) bool {
	words := wordSet(a)
	shared := 0
	for w := range wordSet(b) {
		if _, ok := words[w]; ok {
			shared++
		}
	}
	return shared > s.Threshold
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Dedup keeps the first point of every cluster of similar points: a point is
// dropped when it is similar to one already kept.
func Dedup(points []Point, sim Similarity) []Point {
	kept := make([]Point, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, k := range kept {
			if sim.Similar(p.Text, k.Text) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, p)
		}
	}
	return kept
}
