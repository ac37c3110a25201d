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

// StructuredFileConfig is the on-disk layout of a config file. The same
// struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	EWS struct {
		Endpoint           string   `json:"endpoint" yaml:"endpoint"`
		Username           string   `json:"username" yaml:"username"`
		Password           string   `json:"password" yaml:"password"`
		Token              string   `json:"token" yaml:"token"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxThrottleRetries int      `json:"max_throttle_retries" yaml:"max_throttle_retries"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
		RetryBusyStatus    bool     `json:"retry_busy_status" yaml:"retry_busy_status"`
	} `json:"ews,omitempty" yaml:"ews"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
		Folders      []string `json:"folders" yaml:"folders"`
	} `json:"workers,omitempty" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		EWS: EWS{
			Endpoint:           fileCfg.EWS.Endpoint,
			Username:           fileCfg.EWS.Username,
			Password:           fileCfg.EWS.Password,
			Token:              fileCfg.EWS.Token,
			RequestTimeout:     time.Duration(fileCfg.EWS.RequestTimeout),
			MaxThrottleRetries: fileCfg.EWS.MaxThrottleRetries,
			InsecureSkipVerify: fileCfg.EWS.InsecureSkipVerify,
			RetryBusyStatus:    fileCfg.EWS.RetryBusyStatus,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			SyncInterval: time.Duration(fileCfg.Workers.SyncInterval),
			Folders:      fileCfg.Workers.Folders,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			File:  fileCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
