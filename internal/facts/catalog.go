package facts

import (
	"regexp"

	"github.com/roivaz/commitdraft/internal/signals"
)

var (
	definitionRegexp = regexp.MustCompile(`^\s*(?:async\s+)?(?:def|func|function|const|let|var)\s+(\w+)\s*\(`)
	classRegexp      = regexp.MustCompile(`^\s*class\s+(\w+)`)
	importRegexp     = regexp.MustCompile(`^\s*(?:import|from)\s+`)
)

// Pattern labels double as summary sentences.
const (
	LabelSubprocess    = "Added subprocess execution capabilities"
	LabelAsync         = "Implemented asynchronous functionality"
	LabelErrorHandling = "Added error handling"
	LabelTests         = "Added test coverage"
	LabelLogging       = "Enhanced logging/debugging output"
	LabelCLI           = "Added command-line interface"
	LabelConfig        = "Implemented configuration handling"
	LabelDecorators    = "Added decorator patterns"
	LabelGit           = "Integrated git automation"
)

// DefaultPatterns is the built-in implementation-pattern catalog. Matching is
// case-insensitive.
var DefaultPatterns = signals.Catalog{
	signals.MustNew("subprocess", `(?i)subprocess\.(?:run|call|check_output|popen)|exec\.command|child_process`, LabelSubprocess),
	signals.MustNew("async", `(?i)async|await|asyncio`, LabelAsync),
	signals.MustNew("error-handling", `(?i)try|except|finally`, LabelErrorHandling),
	signals.MustNew("tests", `(?i)unittest|pytest|test_|assert`, LabelTests),
	signals.MustNew("logging", `(?i)logging|logger|log\.|print\(`, LabelLogging),
	signals.MustNew("cli", `(?i)argparse|click|sys\.argv|cobra`, LabelCLI),
	signals.MustNew("config", `(?i)json\.|yaml\.|toml\.|config`, LabelConfig),
	signals.MustNew("decorators", `(?i)@\w+|decorator`, LabelDecorators),
	signals.MustNew("git", `(?i)git\s+(?:add|commit|push|pull|diff)`, LabelGit),
}
