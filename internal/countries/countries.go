// Package countries holds the static ISO 3166-1 country code to display name table.
package countries

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wherecaniwatch/finder/internal/config"
)

//go:embed countries.json
var bundled []byte

// Table maps country codes to display names. It is read-only after Load.
type Table struct {
	names map[string]string
}

// Load reads the country table. An empty path uses the table compiled into the
// binary. Read or parse failures are logged and produce an empty table, in
// which case codes are shown verbatim.
func Load(path string) *Table {
	logger := config.GetLogger()

	names, err := readTable(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Could not load country table, country codes will be shown verbatim")
		return &Table{names: map[string]string{}}
	}

	logger.Debug().Int("countries", len(names)).Msg("Country table loaded")
	return &Table{names: names}
}

func readTable(path string) (map[string]string, error) {
	data := bundled
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read country table: %w", err)
		}
	}

	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse country table: %w", err)
	}
	if names == nil {
		names = map[string]string{}
	}
	return names, nil
}

// Name returns the display name for code, or code itself when unknown.
func (t *Table) Name(code string) string {
	if name, ok := t.names[code]; ok {
		return name
	}
	return code
}

// Len returns the number of known countries.
func (t *Table) Len() int {
	return len(t.names)
}
