package deals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads catalogs from a JSON file and validates them.
// An empty path returns the built-in catalogs.
func Load(path string) (Catalogs, error) {
	if path == "" {
		return Default(), nil
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var catalogs Catalogs
	if err := json.Unmarshal(data, &catalogs); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	if err := catalogs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	return catalogs, nil
}
