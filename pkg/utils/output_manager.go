package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager lays out saved results as <base>/<runID>/<file>.
type OutputManager struct {
	BaseOutputDir string
}

func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateRunDir creates the directory of one run.
func (om *OutputManager) CreateRunDir(runID string) (string, error) {
	if runID == "" || runID != filepath.Base(runID) {
		return "", fmt.Errorf("invalid run id %q", runID)
	}
	dir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return dir, nil
}

// FilePath returns the path of fileName inside the run directory, creating it.
// Path separators in fileName are dropped.
func (om *OutputManager) FilePath(runID, fileName string) (string, error) {
	dir, err := om.CreateRunDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// FileType derives the export format from the extension.
func FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	default:
		return "unknown"
	}
}
