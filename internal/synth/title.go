package synth

import (
	"path"
	"regexp"
	"strings"

	"github.com/roivaz/commitdraft/internal/signals"
)

const maxSubjectWords = 5

// GenericTitle is used when neither context nor diff offers a subject.
const GenericTitle = "Update codebase with new features"

// verbCatalog maps intent phrases in lower-cased context to title templates.
// Labels are the capitalized verb; the capture group is the subject.
var verbCatalog = signals.Catalog{
	signals.MustNew("implement", `\bimplement(?:s|ed|ing)?\s+(.+?)\s+(?:for|to|that)\b`, "Implement"),
	signals.MustNew("add", `\badd(?:s|ed|ing)?\s+(.+?)\s+(?:for|to|that)\b`, "Add"),
	signals.MustNew("create", `\bcreat(?:e|es|ed|ing)\s+(.+?)\s+(?:for|to|that)\b`, "Create"),
	signals.MustNew("fix", `\bfix(?:es|ed|ing)?\s+(.+?)\s+(?:in|for)\b`, "Fix"),
	signals.MustNew("update", `\bupdat(?:e|es|ed|ing)\s+(.+?)\s+(?:to|for)\b`, "Update"),
	signals.MustNew("refactor", `\brefactor(?:s|ed|ing)?\s+(.+?)\s+(?:to|for)\b`, "Refactor"),
}

var trailingConnectives = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"with": true, "to": true, "for": true, "in": true, "that": true,
}

var edgePunctuation = regexp.MustCompile(`^[\s"'.,;:!?()\[\]]+|[\s"'.,;:!?()\[\]]+$`)

// titleFromContext applies the verb catalog in order. Within a verb, matches
// are tried left to right; the first subject that survives cleaning wins.
func titleFromContext(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, verb := range verbCatalog {
		for _, m := range verb.Pattern.FindAllStringSubmatch(lowered, -1) {
			if subject, ok := cleanSubject(m[1]); ok {
				return verb.Label + " " + subject, true
			}
		}
	}
	return "", false
}

// cleanSubject collapses whitespace, strips edge punctuation and trailing
// connective words, and rejects subjects that are empty or longer than
// maxSubjectWords.
func cleanSubject(raw string) (string, bool) {
	words := strings.Fields(edgePunctuation.ReplaceAllString(raw, ""))
	for len(words) > 0 && trailingConnectives[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	if len(words) == 0 || len(words) > maxSubjectWords {
		return "", false
	}
	return strings.Join(words, " "), true
}

// Title evaluates the title rule chain; the first rule that applies wins.
func (s *Synthesizer) Title(in Input) string {
	ctx := in.Context
	if title, ok := titleFromContext(ctx.LastPrompt + " " + ctx.WorkSummary + " " + ctx.TaskDescription); ok {
		return title
	}
	f := in.Facts
	switch {
	case len(f.FunctionsAdded) > 0:
		return "Add " + f.FunctionsAdded[0] + " functionality"
	case len(f.ClassesAdded) > 0:
		return "Implement " + f.ClassesAdded[0] + " class"
	case len(f.FilesModified) == 1:
		return "Update " + path.Base(f.FilesModified[0])
	default:
		return GenericTitle
	}
}
