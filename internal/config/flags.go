package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig             = "config"
	FlagEndpoint           = "endpoint"
	FlagUsername           = "username"
	FlagPassword           = "password"
	FlagToken              = "token"
	FlagRequestTimeout     = "request-timeout"
	FlagMaxThrottleRetries = "max-throttle-retries"
	FlagInsecureSkipVerify = "insecure-skip-verify"
	FlagRetryBusyStatus    = "retry-busy-status"
	FlagDSN                = "db-dsn"
	FlagSyncInterval       = "sync-interval"
	FlagFolders            = "folders"
	FlagLogLevel           = "log-level"
	FlagLogFile            = "log-file"
)

// RegisterFlags adds every configuration flag to fs.
//
// Flags:
//
//	-c/--config config file path (JSON or YAML)
//	--endpoint EWS endpoint URL
//	--username / --password basic auth credentials
//	--token OAuth2 bearer token
//	--request-timeout per-request timeout (e.g., "30s", "1m")
//	--max-throttle-retries cap on server-busy retries, 0 = unbounded
//	--insecure-skip-verify skip TLS verification
//	--retry-busy-status retry server-busy faults sent with an error status
//	-d/--db-dsn sync-state database DSN
//	--sync-interval background sync period
//	--folders folder ids to sync messages for
//	--log-level / --log-file logger settings
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Config file path (JSON or YAML)")
	fs.String(FlagEndpoint, "", "EWS endpoint URL")
	fs.String(FlagUsername, "", "Basic auth username")
	fs.String(FlagPassword, "", "Basic auth password")
	fs.String(FlagToken, "", "OAuth2 bearer token")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int(FlagMaxThrottleRetries, 0, "Maximum consecutive server-busy retries (0 = unbounded)")
	fs.Bool(FlagInsecureSkipVerify, false, "Skip TLS certificate verification")
	fs.Bool(FlagRetryBusyStatus, false, "Retry server-busy faults sent with an error HTTP status")
	fs.StringP(FlagDSN, "d", "", "Sync-state database DSN (sqlite path or postgres URL)")
	fs.Duration(FlagSyncInterval, 0, "Background sync interval (e.g., 5m)")
	fs.StringSlice(FlagFolders, nil, "Folder ids to sync messages for")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
}

// parseFlags reads the values registered by RegisterFlags from a parsed fs.
// Flags that were not registered are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || fs.Lookup(name) == nil {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagConfig, &cfg.ConfigFilePath)
	str(FlagEndpoint, &cfg.EWS.Endpoint)
	str(FlagUsername, &cfg.EWS.Username)
	str(FlagPassword, &cfg.EWS.Password)
	str(FlagToken, &cfg.EWS.Token)
	str(FlagDSN, &cfg.Storage.DB.DSN)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagLogFile, &cfg.Log.File)

	if err == nil && fs.Lookup(FlagRequestTimeout) != nil {
		cfg.EWS.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout)
	}
	if err == nil && fs.Lookup(FlagSyncInterval) != nil {
		cfg.Workers.SyncInterval, err = fs.GetDuration(FlagSyncInterval)
	}
	if err == nil && fs.Lookup(FlagMaxThrottleRetries) != nil {
		cfg.EWS.MaxThrottleRetries, err = fs.GetInt(FlagMaxThrottleRetries)
	}
	if err == nil && fs.Lookup(FlagInsecureSkipVerify) != nil {
		cfg.EWS.InsecureSkipVerify, err = fs.GetBool(FlagInsecureSkipVerify)
	}
	if err == nil && fs.Lookup(FlagRetryBusyStatus) != nil {
		cfg.EWS.RetryBusyStatus, err = fs.GetBool(FlagRetryBusyStatus)
	}
	if err == nil && fs.Lookup(FlagFolders) != nil {
		cfg.Workers.Folders, err = fs.GetStringSlice(FlagFolders)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}
