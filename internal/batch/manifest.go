package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteManifest writes the run summary as JSON to the output directory.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
