package signals

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/roivaz/commitdraft/internal/logging"
)

// Definition is the on-disk form of a signal.
type Definition struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Label   string `json:"label"`
	// CaseSensitive disables the (?i) flag added by default.
	CaseSensitive bool `json:"caseSensitive,omitempty"`
}

type catalogFile struct {
	Signals []Definition `json:"signals"`
}

// LoadFile reads a YAML (or JSON) catalog of extra signals:
//
//	signals:
//	  - name: grpc
//	    pattern: 'grpc\.'
//	    label: Added gRPC transport
//
// Entries without a pattern or label, or with a pattern that does not
// compile, are logged and skipped.
func LoadFile(path string, log logging.Logger) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signals file %s: %w", path, err)
	}
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse signals file %s: %w", path, err)
	}

	out := make(Catalog, 0, len(raw.Signals))
	for idx, def := range raw.Signals {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", path, idx)
		}
		if def.Pattern == "" || def.Label == "" {
			log.Info("skip incomplete signal", "signal", name)
			continue
		}
		pattern := def.Pattern
		if !def.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		s, err := New(name, pattern, def.Label)
		if err != nil {
			log.Error(err, "skip invalid signal", "signal", name)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
