package diff

import (
	"strings"

	"github.com/roivaz/commitdraft/internal/logging"
)

const fileHeaderPrefix = "diff --git "

// Options tune Segment.
type Options struct {
	// SkipGenerated drops the lines of lockfiles, vendored and generated
	// sources from the flattened views. The files still appear in Records.
	SkipGenerated bool
	Logger        logging.Logger
}

// Segment splits raw unified diff text into per-file records. It never
// fails: lines that are not file headers, added, removed or context lines are
// ignored.
func Segment(diffText string, opts Options) Segmented {
	var out Segmented
	if strings.TrimSpace(diffText) == "" {
		return out
	}

	current := -1
	skipCurrent := false

	for _, line := range strings.Split(diffText, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, fileHeaderPrefix):
			out.Records = append(out.Records, Record{Path: headerPath(line)})
			current = len(out.Records) - 1
			skipCurrent = false
			if opts.SkipGenerated {
				if ign, reason := shouldIgnoreFile(out.Records[current].Path, ignorePatterns); ign {
					skipCurrent = true
					out.Skipped = append(out.Skipped, SkippedFile{Path: out.Records[current].Path, Reason: reason})
					opts.Logger.Debug("skip generated file", "file", out.Records[current].Path, "reason", reason)
				}
			}
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			text := line[1:]
			if current >= 0 {
				out.Records[current].Added = append(out.Records[current].Added, text)
			}
			if !skipCurrent {
				out.Added = append(out.Added, text)
			}
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			text := line[1:]
			if current >= 0 {
				out.Records[current].Removed = append(out.Records[current].Removed, text)
			}
			if !skipCurrent {
				out.Removed = append(out.Removed, text)
			}
		case strings.HasPrefix(line, " "):
			if current >= 0 {
				out.Records[current].Context = append(out.Records[current].Context, line[1:])
			}
		}
	}
	return out
}

// headerPath extracts the post-change path from a "diff --git a/x b/y" line:
// the last token with its b/ prefix removed.
func headerPath(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	last := strings.Trim(fields[len(fields)-1], `"`)
	return strings.TrimPrefix(last, "b/")
}

// ComputeStats counts lines and estimates the token size of the raw diff.
// A nil estimate uses EstimateTokens.
func ComputeStats(diffText string, seg Segmented, estimate func(string) int) Stats {
	if estimate == nil {
		estimate = EstimateTokens
	}
	return Stats{
		FilesTotal:    len(seg.Paths()),
		FilesFiltered: len(seg.Skipped),
		LinesAdded:    len(seg.Added),
		LinesRemoved:  len(seg.Removed),
		Tokens:        estimate(diffText),
	}
}
