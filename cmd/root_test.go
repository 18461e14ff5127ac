package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jcc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestInitConfigReadsFile(t *testing.T) {
	viper.Reset()
	cfgFile = writeConfig(t, "palette: colors.csv\n")
	defer func() { cfgFile = ""; viper.Reset() }()

	initConfig()

	assert.Equal(t, "colors.csv", viper.GetString("palette"))
}

func TestInitConfigToleratesMalformedFile(t *testing.T) {
	viper.Reset()
	cfgFile = writeConfig(t, "palette: [unclosed\n")
	defer func() { cfgFile = ""; viper.Reset() }()

	assert.NotPanics(t, initConfig)
	assert.Empty(t, viper.GetString("palette"))
}
