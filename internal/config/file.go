package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML documents.
type fileConfig struct {
	App struct {
		LogFile        string `json:"log_file" yaml:"log_file"`
		MetricsAddress string `json:"metrics_address" yaml:"metrics_address"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Redis struct {
			Address   string `json:"address" yaml:"address"`
			Password  string `json:"password" yaml:"password"`
			DB        int    `json:"db" yaml:"db"`
			KeyPrefix string `json:"key_prefix" yaml:"key_prefix"`
		} `json:"redis" yaml:"redis"`
		SnapshotKey string `json:"snapshot_key" yaml:"snapshot_key"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		ReconcileInterval Duration `json:"reconcile_interval" yaml:"reconcile_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile decodes the configuration file at path. The format is chosen by
// extension: .yaml and .yml are YAML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			LogFile:        fc.App.LogFile,
			MetricsAddress: fc.App.MetricsAddress,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
			Redis: Redis{
				Address:   fc.Storage.Redis.Address,
				Password:  fc.Storage.Redis.Password,
				DB:        fc.Storage.Redis.DB,
				KeyPrefix: fc.Storage.Redis.KeyPrefix,
			},
			SnapshotKey: fc.Storage.SnapshotKey,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ReconcileInterval: time.Duration(fc.Workers.ReconcileInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := value.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
