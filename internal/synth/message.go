package synth

import "strings"

// Point is a rendered summary sentence and the rule that produced it.
type Point struct {
	Text string
	Rule string
}

// CommitMessage is the synthesized draft.
type CommitMessage struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// String renders the title, a blank line, then one "- " line per bullet, with
// trailing whitespace trimmed.
func (m CommitMessage) String() string {
	return Format(m.Title, m.Bullets)
}

// Format renders a title and bullets as a commit message.
func Format(title string, bullets []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, bullet := range bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
