package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCreateRecordStore_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := &RecordsConfig{Type: "memory"}

	store, err := CreateRecordStore(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create memory record store: %v", err)
	}
	if store == nil {
		t.Fatal("Expected non-nil store")
	}
}

func TestCreateRecordStore_UnknownType(t *testing.T) {
	ctx := context.Background()
	cfg := &RecordsConfig{Type: "cassandra"}

	_, err := CreateRecordStore(ctx, cfg)
	if err == nil {
		t.Fatal("Expected error for unknown record store type")
	}
	if !strings.Contains(err.Error(), "unknown record store type") {
		t.Errorf("Expected unknown type error, got: %v", err)
	}
}

func TestCreateSessionCache_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := &SessionsConfig{Type: "memory", TTL: time.Hour}

	cache, err := CreateSessionCache(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create memory session cache: %v", err)
	}
	if cache == nil {
		t.Fatal("Expected non-nil cache")
	}
}

func TestCreateSessionCache_Badger(t *testing.T) {
	ctx := context.Background()
	cfg := &SessionsConfig{
		Type: "badger",
		TTL:  time.Hour,
		Badger: map[string]any{
			"path": t.TempDir(),
		},
	}

	cache, err := CreateSessionCache(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create badger session cache: %v", err)
	}
	defer cache.Close()

	if err := cache.Ping(ctx); err != nil {
		t.Errorf("Expected badger cache to be reachable: %v", err)
	}
}

func TestCreateSessionCache_UnknownType(t *testing.T) {
	ctx := context.Background()
	cfg := &SessionsConfig{Type: "redis"}

	_, err := CreateSessionCache(ctx, cfg)
	if err == nil {
		t.Fatal("Expected error for unknown session cache type")
	}
}

func TestCreatePayloadStore_Filesystem(t *testing.T) {
	ctx := context.Background()
	cfg := &PayloadsConfig{
		Type: "filesystem",
		Filesystem: map[string]any{
			"root": t.TempDir(),
		},
	}

	store, err := CreatePayloadStore(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create filesystem payload store: %v", err)
	}
	if store == nil {
		t.Fatal("Expected non-nil store")
	}
}

func TestCreatePayloadStore_FilesystemMissingRoot(t *testing.T) {
	ctx := context.Background()
	cfg := &PayloadsConfig{
		Type:       "filesystem",
		Filesystem: map[string]any{},
	}

	_, err := CreatePayloadStore(ctx, cfg)
	if err == nil {
		t.Fatal("Expected error for missing root")
	}
	if !strings.Contains(err.Error(), "root is required") {
		t.Errorf("Expected 'root is required' error, got: %v", err)
	}
}

func TestCreatePayloadStore_UnknownType(t *testing.T) {
	ctx := context.Background()
	cfg := &PayloadsConfig{Type: "tape"}

	_, err := CreatePayloadStore(ctx, cfg)
	if err == nil {
		t.Fatal("Expected error for unknown payload store type")
	}
}
