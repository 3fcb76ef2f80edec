package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level INFO, got %q", cfg.Logging.Level)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Records.Type != "mongo" {
		t.Errorf("Expected default record store mongo, got %q", cfg.Records.Type)
	}
	if cfg.Records.Mongo["database"] != DefaultMongoDatabase {
		t.Errorf("Expected default database %q, got %v", DefaultMongoDatabase, cfg.Records.Mongo["database"])
	}
	if cfg.Sessions.TTL != DefaultSessionTTL {
		t.Errorf("Expected default session TTL %v, got %v", DefaultSessionTTL, cfg.Sessions.TTL)
	}
	if cfg.Payloads.Type != "filesystem" {
		t.Errorf("Expected default payload store filesystem, got %q", cfg.Payloads.Type)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
logging:
  level: debug
server:
  port: 8080
  shutdown_timeout: 5s
records:
  type: memory
sessions:
  type: memory
  ttl: 1h
payloads:
  type: filesystem
  filesystem:
    root: /var/lib/filedepot
`
	path := filepath.Join(t.TempDir(), "filedepot.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized level DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected shutdown timeout 5s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Records.Type != "memory" {
		t.Errorf("Expected memory record store, got %q", cfg.Records.Type)
	}
	if cfg.Sessions.TTL != time.Hour {
		t.Errorf("Expected session TTL 1h, got %v", cfg.Sessions.TTL)
	}
	if cfg.Payloads.Filesystem["root"] != "/var/lib/filedepot" {
		t.Errorf("Expected payload root override, got %v", cfg.Payloads.Filesystem["root"])
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Logging.Level = "LOUD"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for unknown log level")
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Server.Port = 70000

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for out-of-range port")
	}
}

func TestValidateBadgerNeedsPathOrInMemory(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Sessions.Badger["path"] = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for badger without path")
	}
	if !strings.Contains(err.Error(), "path is required") {
		t.Errorf("Expected 'path is required' error, got: %v", err)
	}

	cfg.Sessions.Badger["in_memory"] = true
	if err := Validate(cfg); err != nil {
		t.Errorf("Expected in_memory to satisfy badger validation, got: %v", err)
	}
}

func TestValidateS3NeedsBucketAndRegion(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Payloads.Type = "s3"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for s3 without bucket")
	}
	if !strings.Contains(err.Error(), "bucket is required") {
		t.Errorf("Expected 'bucket is required' error, got: %v", err)
	}

	cfg.Payloads.S3["bucket"] = "depot"
	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "region is required") {
		t.Errorf("Expected 'region is required' error, got: %v", err)
	}

	cfg.Payloads.S3["region"] = "eu-west-1"
	if err := Validate(cfg); err != nil {
		t.Errorf("Expected complete s3 config to validate, got: %v", err)
	}
}
