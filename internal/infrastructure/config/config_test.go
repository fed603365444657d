package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5079, cfg.Catalog.Port)
	assert.Equal(t, ".", cfg.Catalog.DataDir)
	assert.Equal(t, 8000, cfg.Library.Port)
	assert.Equal(t, "data", cfg.Library.DataDir)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, ":8000", cfg.Library.Addr())
	assert.Equal(t, uint32(5), cfg.Storage.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Storage.Breaker.OpenTimeout)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "flatstore.events", cfg.Events.Exchange)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  port: 6000
storage:
  driver: redis
redis:
  host: cache
`), 0o644))

	t.Setenv("FLATSTORE_CATALOG_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)

	// 环境变量优先于文件
	assert.Equal(t, 7000, cfg.Catalog.Port)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Catalog: ServiceConfig{Port: 5079},
		Library: ServiceConfig{Port: 8000},
		Storage: StorageConfig{Driver: DriverFile},
	}
	assert.NoError(t, validate(cfg))

	cfg.Storage.Driver = "mysql"
	assert.Error(t, validate(cfg))

	cfg.Storage.Driver = DriverFile
	cfg.Library.Port = 70000
	assert.Error(t, validate(cfg))
	cfg.Library.Port = 8000

	// redis驱动需要熔断阈值
	cfg.Storage.Driver = DriverRedis
	assert.Error(t, validate(cfg))
	cfg.Storage.Breaker.MaxFailures = 3
	assert.NoError(t, validate(cfg))

	cfg.Events = EventsConfig{Enabled: true}
	assert.Error(t, validate(cfg))
	cfg.Events = EventsConfig{Enabled: true, URL: "amqp://localhost", Exchange: "x"}
	assert.NoError(t, validate(cfg))

	cfg.Tracing.SampleRatio = 1.5
	assert.Error(t, validate(cfg))
}
