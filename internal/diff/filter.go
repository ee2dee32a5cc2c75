package diff

import (
	"regexp"
	"sort"
)

var ignorePatternMap = map[string]string{
	"package-lock":         `package-lock\.json$`,
	"yarn-lock":            `yarn\.lock$`,
	"pnpm-lock":            `pnpm-lock\.yaml$`,
	"npm-shrinkwrap":       `npm-shrinkwrap\.json$`,
	"go-sum":               `go\.sum$`,
	"go-work-sum":          `go\.work\.sum$`,
	"vendor":               `(^|/)vendor/`,
	"node_modules":         `(^|/)node_modules/`,
	"generated-go":         `\.(?:pb|pb\.gw|pb\.json|pb\.grpc)\.go$`,
	"generated-client":     `\.generated\.(?:ts|js|py|go|rs|java)$`,
	"typescript-snapshots": `\.snap$`,
	"python-cache":         `(^|/)__pycache__/|\.pyc$`,
	"minified":             `\.min\.(?:js|css)$`,
	"lockfiles":            `\.lock$`,
}

type ignorePattern struct {
	reason string
	rx     *regexp.Regexp
}

var ignorePatterns = buildIgnorePatterns()

// buildIgnorePatterns compiles the catalog sorted by reason so the reported
// reason is stable when several patterns match.
func buildIgnorePatterns() []ignorePattern {
	reasons := make([]string, 0, len(ignorePatternMap))
	for reason := range ignorePatternMap {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	compiled := make([]ignorePattern, 0, len(reasons))
	for _, reason := range reasons {
		compiled = append(compiled, ignorePattern{reason: reason, rx: regexp.MustCompile(ignorePatternMap[reason])})
	}
	return compiled
}

func shouldIgnoreFile(path string, patterns []ignorePattern) (bool, string) {
	for _, p := range patterns {
		if p.rx.MatchString(path) {
			return true, p.reason
		}
	}
	return false, ""
}
