package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInitFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
mysql:
  addr: "db:3306"
  database: videohub
  username: root
  password: secret
redis:
  addr: "cache:6379"
  db: 2
admin:
  email: boss@example.com
sentinel:
  enabled: true
  search_qps: 7
`)
	require.NoError(t, InitFromFile(path))

	assert.Equal(t, "127.0.0.1:9000", ConfigInfo.Server.Addr)
	assert.Equal(t, "db:3306", ConfigInfo.Mysql.Addr)
	assert.Equal(t, "videohub", ConfigInfo.Mysql.Database)
	assert.Equal(t, "secret", ConfigInfo.Mysql.Password)
	assert.Equal(t, "cache:6379", ConfigInfo.Redis.Addr)
	assert.Equal(t, 2, ConfigInfo.Redis.DB)
	assert.Equal(t, "boss@example.com", ConfigInfo.Admin.Email)
	assert.True(t, ConfigInfo.Sentinel.Enabled)
	assert.Equal(t, 7.0, ConfigInfo.Sentinel.SearchQPS)
}

func TestDefaults(t *testing.T) {
	path := writeConfig(t, "mysql:\n  addr: \"db:3306\"\n")
	require.NoError(t, InitFromFile(path))

	assert.Equal(t, "0.0.0.0:8888", ConfigInfo.Server.Addr)
	assert.Equal(t, "utf8mb4", ConfigInfo.Mysql.Charset)
	assert.Equal(t, "./public", ConfigInfo.Storage.LocalDir)
	assert.Equal(t, "/uploads", ConfigInfo.Storage.URLPrefix)
	assert.Equal(t, "720h", ConfigInfo.Jwt.Timeout)
	assert.Empty(t, ConfigInfo.RabbitMq.Addr)
	assert.Empty(t, ConfigInfo.Elastic.Addr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mysql:\n  addr: \"db:3306\"\n")
	t.Setenv("VIDEOHUB_MYSQL_ADDR", "other:3307")
	t.Setenv("VIDEOHUB_RABBITMQ_ADDR", "mq:5672")
	require.NoError(t, InitFromFile(path))

	assert.Equal(t, "other:3307", ConfigInfo.Mysql.Addr)
	assert.Equal(t, "mq:5672", ConfigInfo.RabbitMq.Addr)
}

func TestInitFromFileMissing(t *testing.T) {
	err := InitFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
