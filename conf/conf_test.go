package conf

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	file, err := Load(filepath.Join(t.TempDir(), "none.ini"))
	require.NoError(t, err)
	assert.Equal(t, 9000, file.Section("server").Key("Port").MustInt(9000))
}

func TestLoadAndSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nLevel = debug\n"), 0o644))

	file, err := Load(path)
	require.NoError(t, err)

	defer log.SetLevel(log.GetLevel())
	SetupLogging(file)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupLoggingBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nLevel = loud\n"), 0o644))
	file, err := Load(path)
	require.NoError(t, err)

	defer log.SetLevel(log.GetLevel())
	SetupLogging(file)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestRepositoryConfigLoads(t *testing.T) {
	file, err := Load("config.ini")
	require.NoError(t, err)
	assert.NotEmpty(t, file.Section("server").Key("Addr").String())
}
