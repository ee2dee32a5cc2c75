package diff

// Record holds the changed lines of one file, in diff order.
type Record struct {
	Path    string
	Added   []string
	Removed []string
	Context []string
}

// Segmented is a parsed unified diff. Added and Removed flatten the lines of
// every record (and of any changed lines seen before the first file header)
// for extractors that do not care which file a line belongs to.
type Segmented struct {
	Records []Record
	Added   []string
	Removed []string
	Skipped []SkippedFile
}

// SkippedFile is a record excluded from the flattened views by the
// generated-file filter.
type SkippedFile struct {
	Path   string
	Reason string
}

// Paths returns the post-change path of every record in diff order, without
// duplicates.
func (s Segmented) Paths() []string {
	seen := make(map[string]struct{}, len(s.Records))
	paths := make([]string, 0, len(s.Records))
	for _, rec := range s.Records {
		if _, ok := seen[rec.Path]; ok {
			continue
		}
		seen[rec.Path] = struct{}{}
		paths = append(paths, rec.Path)
	}
	return paths
}

// Stats summarizes a segmented diff for logs and analysis reports.
type Stats struct {
	FilesTotal    int `json:"files_total"`
	FilesFiltered int `json:"files_filtered"`
	LinesAdded    int `json:"lines_added"`
	LinesRemoved  int `json:"lines_removed"`
	Tokens        int `json:"tokens"`
}
