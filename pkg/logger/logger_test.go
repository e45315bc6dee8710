package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(Config{Level: "debug", Format: "json", File: path, MaxSizeMB: 1})
	t.Cleanup(func() {
		Init(Config{Level: "info"})
	})

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	logrus.WithField("video", "v1").Info("processed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"video":"v1"`)
	assert.Contains(t, string(data), `"msg":"processed"`)
}

func TestInitUnknownLevel(t *testing.T) {
	Init(Config{Level: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestHertzLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelDebug, hertzLevel(logrus.DebugLevel))
	assert.Equal(t, hlog.LevelWarn, hertzLevel(logrus.WarnLevel))
	assert.Equal(t, hlog.LevelInfo, hertzLevel(logrus.InfoLevel))
	assert.Equal(t, hlog.LevelFatal, hertzLevel(logrus.PanicLevel))
}
