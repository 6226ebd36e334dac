package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOutputPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Explicit path wins
	got := ResolveOutputPath("out/custom.json", "JSONOutputDir", "json", "laureates.json")
	assert.Equal(t, filepath.Clean("out/custom.json"), got)

	// Configured base directory
	viper.Set("JSONOutputDir", "./data/json/")
	got = ResolveOutputPath("", "JSONOutputDir", "json", "laureates.json")
	assert.Equal(t, filepath.Clean("data/json/laureates.json"), got)

	// Fallback directory when config is empty
	viper.Reset()
	got = ResolveOutputPath("", "JSONOutputDir", "json", "laureates.json")
	assert.Equal(t, filepath.Clean("json/laureates.json"), got)
}

func TestEnsureOutputDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "out.xlsx")

	require.NoError(t, EnsureOutputDir(target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
