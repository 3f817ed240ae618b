package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Console(t *testing.T) {
	t.Cleanup(func() { Set(newDiscard()) })

	var buf bytes.Buffer
	closer, err := Setup(Config{Level: logrus.InfoLevel, Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestSetup_StructuredFile(t *testing.T) {
	t.Cleanup(func() { Set(newDiscard()) })

	path := filepath.Join(t.TempDir(), "altcmp.log")
	closer, err := Setup(Config{Level: logrus.WarnLevel, Structured: true, FileLocation: path})
	require.NoError(t, err)

	WithFields(logrus.Fields{"format": "deb"}).Warn("bad version")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format":"deb"`)
	assert.Contains(t, string(data), `"msg":"bad version"`)
}

func TestSetup_BadFile(t *testing.T) {
	_, err := Setup(Config{FileLocation: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      logrus.Level
	}{
		{0, logrus.WarnLevel},
		{1, logrus.InfoLevel},
		{2, logrus.DebugLevel},
		{3, logrus.TraceLevel},
		{7, logrus.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity, logrus.WarnLevel))
	}
}
