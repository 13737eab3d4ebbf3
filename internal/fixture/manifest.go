package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nischitkumar/Mutable/internal/domain"
)

const ManifestName = "fixtures.manifest.json"

func ManifestPath(outDir string) string {
	if outDir == "" {
		outDir = "."
	}
	return filepath.Join(outDir, ManifestName)
}

func WriteManifest(path string, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
