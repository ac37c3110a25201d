package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultDSN            = "ews-sync.db"
	DefaultLogLevel       = "info"
)

// ClientEWS holds the endpoint, credentials and request behaviour.
type ClientEWS struct {
	Endpoint           string
	Username           string
	Password           string
	Token              string
	RequestTimeout     time.Duration
	MaxThrottleRetries int
	InsecureSkipVerify bool
	RetryBusyStatus    bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the mailbox sync job runs.
	SyncInterval time.Duration
	// Folders restricts message sync; empty means all synced mail folders.
	Folders []string
}

// ClientLog contains logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// EWS contains the server connection settings.
	EWS ClientEWS
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains logger settings.
	Log ClientLog
	// ConfigFilePath is the config file the settings were read from, if any.
	ConfigFilePath string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields,
// applies defaults for unset values, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		EWS: ClientEWS{
			Endpoint:           cfg.EWS.Endpoint,
			Username:           cfg.EWS.Username,
			Password:           cfg.EWS.Password,
			Token:              cfg.EWS.Token,
			RequestTimeout:     cfg.EWS.RequestTimeout,
			MaxThrottleRetries: cfg.EWS.MaxThrottleRetries,
			InsecureSkipVerify: cfg.EWS.InsecureSkipVerify,
			RetryBusyStatus:    cfg.EWS.RetryBusyStatus,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			Folders:      cfg.Workers.Folders,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		ConfigFilePath: cfg.ConfigFilePath,
	}

	if clientCfg.EWS.RequestTimeout == 0 {
		clientCfg.EWS.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultDSN
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = DefaultLogLevel
	}

	return clientCfg
}

// ReloadCredentials re-reads the EWS credentials from the environment and
// the config file at path. Flags are parsed once per process and are not
// consulted again, so a credential given on the command line cannot change.
func ReloadCredentials(path string) (ClientEWS, error) {
	b := newConfigBuilder()
	if path != "" {
		b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	}

	cfg, err := b.withEnv().withFile().build()
	if err != nil {
		return ClientEWS{}, fmt.Errorf("error reloading credentials: %w", err)
	}

	return ClientEWS{
		Username: cfg.EWS.Username,
		Password: cfg.EWS.Password,
		Token:    cfg.EWS.Token,
	}, nil
}
