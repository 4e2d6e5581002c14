package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// Earlier sources win: env beats flags, flags beat the file, defaults fill the rest.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag", RequestTimeout: 3 * time.Second}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultReconcileInterval, cfg.Workers.ReconcileInterval)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "absent.json")})

	b.withFile()
	assert.Error(t, b.err)
}

func TestWithEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/etc/school-link.yaml")
	t.Setenv("APP_LOG_FILE", "/tmp/client.log")
	t.Setenv("APP_METRICS_ADDRESS", "127.0.0.1:9100")
	t.Setenv("ADAPTER_ADDRESS", "https://api.example.org")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "7s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/var/lib/school-link.db")
	t.Setenv("STORAGE_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("STORAGE_REDIS_DB", "2")
	t.Setenv("STORAGE_SNAPSHOT_KEY", "secret")
	t.Setenv("WORKERS_RECONCILE_INTERVAL", "1m")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]

	assert.Equal(t, "/etc/school-link.yaml", cfg.FilePath)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "127.0.0.1:9100", cfg.App.MetricsAddress)
	assert.Equal(t, "https://api.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/school-link.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "secret", cfg.Storage.SnapshotKey)
	assert.Equal(t, time.Minute, cfg.Workers.ReconcileInterval)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()
	assert.ErrorContains(t, b.err, "error getting env configs")
	assert.Empty(t, b.configs)
}

func TestBindFlags_ParsesValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "https://api.example.org",
		"--request-timeout", "4s",
		"-d", "local.db",
		"--metrics-address", "127.0.0.1:9100",
		"--reconcile-interval", "30s",
	})
	require.NoError(t, err)

	cfg := f.structured()
	assert.Equal(t, "https://api.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9100", cfg.App.MetricsAddress)
	assert.Equal(t, 30*time.Second, cfg.Workers.ReconcileInterval)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9100", want: NetAddress{Host: "127.0.0.1", Port: 9100}},
		{name: "all interfaces", input: ":9100", want: NetAddress{Port: 9100}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "not-an-ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFile_JSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"adapter": {"http_address": "https://api.example.org", "request_timeout": "12s"},
		"storage": {"db": {"dsn": "client.db"}, "snapshot_key": "k"},
		"workers": {"reconcile_interval": "2m"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "k", cfg.Storage.SnapshotKey)
	assert.Equal(t, 2*time.Minute, cfg.Workers.ReconcileInterval)
}

func TestParseFile_YAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	body := `
adapter:
  http_address: https://api.example.org
  request_timeout: 9s
storage:
  redis:
    address: localhost:6379
    key_prefix: "test:"
workers:
  reconcile_interval: 45s
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, 9*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "test:", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, 45*time.Second, cfg.Workers.ReconcileInterval)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))

	_, err := parseFile(p)
	assert.Error(t, err)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaults())
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ""
	cfg.Storage.Redis.Address = "localhost:6379"
	assert.NoError(t, cfg.validate())

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.ReconcileInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
