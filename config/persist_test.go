package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)

	cfg := validConfig()
	cfg.Generate.Lang = LangRust
	cfg.Generate.Split = true
	cfg.TDLib.Version = "1.8.29"
	require.NoError(t, Save(path, &cfg))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestSaveRotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	cfg := validConfig()

	for i := 0; i < 5; i++ {
		cfg.Client.LogVerbosity = i
		require.NoError(t, Save(path, &cfg))
	}

	for _, suffix := range []string{".back1", ".back2", ".back3"} {
		_, err := os.Stat(path + suffix)
		assert.NoError(t, err, "expected backup %s", suffix)
	}
	_, err := os.Stat(path + ".back4")
	assert.True(t, os.IsNotExist(err))

	// .back1 holds the previous save
	prev, err := LoadFromFile(path + ".back1")
	require.NoError(t, err)
	assert.Equal(t, 3, prev.Client.LogVerbosity)
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	cfg := validConfig()
	cfg.Generate.Lang = "cobol"

	require.Error(t, Save(path, &cfg))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestMarshalLayout(t *testing.T) {
	cfg := validConfig()
	data, err := Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[generate]")
	assert.Contains(t, string(data), "lang = 'go'")
	assert.Contains(t, string(data), "runtime_import = 'github.com/teranos/tlgen/tljson'")
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("tlgen.toml.back1"))
	assert.True(t, isBackupFile("/x/tlgen.toml.back3"))
	assert.False(t, isBackupFile("tlgen.toml"))
	assert.False(t, isBackupFile("td_api.json"))
}
