package config

import (
	"strings"
	"time"
)

// Default values mirror the service's historical environment: MongoDB on
// localhost:27017 with the files_manager database, HTTP on port 5000, and
// payloads under /tmp/files_manager.
const (
	DefaultPort          = 5000
	DefaultMongoHost     = "localhost"
	DefaultMongoPort     = 27017
	DefaultMongoDatabase = "files_manager"
	DefaultPayloadRoot   = "/tmp/files_manager"
	DefaultSessionPath   = "/tmp/filedepot-sessions"
	DefaultSessionTTL    = 24 * time.Hour
)

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyServerDefaults(&cfg.Server)
	applyRecordsDefaults(&cfg.Records)
	applySessionsDefaults(&cfg.Sessions)
	applyPayloadsDefaults(&cfg.Payloads)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)
}

func applyServerDefaults(cfg *ServerConfig) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.RateLimit > 0 && cfg.RateBurst == 0 {
		cfg.RateBurst = cfg.RateLimit * 2
	}
}

func applyRecordsDefaults(cfg *RecordsConfig) {
	if cfg.Type == "" {
		cfg.Type = "mongo"
	}
	if cfg.Mongo == nil {
		cfg.Mongo = make(map[string]any)
	}
	if _, ok := cfg.Mongo["host"]; !ok {
		cfg.Mongo["host"] = DefaultMongoHost
	}
	if _, ok := cfg.Mongo["port"]; !ok {
		cfg.Mongo["port"] = DefaultMongoPort
	}
	if _, ok := cfg.Mongo["database"]; !ok {
		cfg.Mongo["database"] = DefaultMongoDatabase
	}
}

func applySessionsDefaults(cfg *SessionsConfig) {
	if cfg.Type == "" {
		cfg.Type = "badger"
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultSessionTTL
	}
	if cfg.Badger == nil {
		cfg.Badger = make(map[string]any)
	}
	if _, ok := cfg.Badger["path"]; !ok {
		cfg.Badger["path"] = DefaultSessionPath
	}
}

func applyPayloadsDefaults(cfg *PayloadsConfig) {
	if cfg.Type == "" {
		cfg.Type = "filesystem"
	}
	if cfg.Filesystem == nil {
		cfg.Filesystem = make(map[string]any)
	}
	if _, ok := cfg.Filesystem["root"]; !ok {
		cfg.Filesystem["root"] = DefaultPayloadRoot
	}
	if cfg.S3 == nil {
		cfg.S3 = make(map[string]any)
	}
}
