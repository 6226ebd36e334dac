package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ResolveOutputPath returns the output file path for an export format.
// An explicit path wins; otherwise the configured base directory for the
// format is combined with the default filename.
func ResolveOutputPath(explicit, dirConfigKey, fallbackDir, filename string) string {
	if explicit != "" {
		return filepath.Clean(explicit)
	}

	baseDir := viper.GetString(dirConfigKey)
	if baseDir == "" {
		baseDir = fallbackDir
	}
	return filepath.Clean(filepath.Join(baseDir, filename))
}

// EnsureOutputDir creates the parent directory of the given output file
func EnsureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
