package config

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/depotlabs/filedepot/pkg/store/payload"
	payloadFs "github.com/depotlabs/filedepot/pkg/store/payload/fs"
	payloadS3 "github.com/depotlabs/filedepot/pkg/store/payload/s3"
	"github.com/depotlabs/filedepot/pkg/store/record"
	recordMemory "github.com/depotlabs/filedepot/pkg/store/record/memory"
	recordMongo "github.com/depotlabs/filedepot/pkg/store/record/mongo"
	"github.com/depotlabs/filedepot/pkg/store/session"
	sessionBadger "github.com/depotlabs/filedepot/pkg/store/session/badger"
	sessionMemory "github.com/depotlabs/filedepot/pkg/store/session/memory"
)

// CreateRecordStore creates a record store based on configuration.
//
// The Type field selects the implementation; the matching untyped section
// is decoded into the store's own configuration type.
func CreateRecordStore(ctx context.Context, cfg *RecordsConfig) (record.Store, error) {
	switch cfg.Type {
	case "mongo":
		var storeCfg recordMongo.MongoRecordStoreConfig
		if err := mapstructure.Decode(cfg.Mongo, &storeCfg); err != nil {
			return nil, fmt.Errorf("failed to decode mongo record store config: %w", err)
		}
		return recordMongo.NewMongoRecordStore(ctx, storeCfg)
	case "memory":
		return recordMemory.NewMemoryRecordStore(), nil
	default:
		return nil, fmt.Errorf("unknown record store type: %q", cfg.Type)
	}
}

// CreateSessionCache creates a session cache based on configuration.
func CreateSessionCache(ctx context.Context, cfg *SessionsConfig) (session.Cache, error) {
	switch cfg.Type {
	case "badger":
		var cacheCfg sessionBadger.BadgerSessionCacheConfig
		if err := mapstructure.Decode(cfg.Badger, &cacheCfg); err != nil {
			return nil, fmt.Errorf("failed to decode badger session cache config: %w", err)
		}
		return sessionBadger.NewBadgerSessionCache(ctx, cacheCfg)
	case "memory":
		return sessionMemory.NewMemorySessionCache(), nil
	default:
		return nil, fmt.Errorf("unknown session cache type: %q", cfg.Type)
	}
}

// CreatePayloadStore creates a payload store based on configuration.
func CreatePayloadStore(ctx context.Context, cfg *PayloadsConfig) (payload.Store, error) {
	switch cfg.Type {
	case "filesystem":
		type fsPayloadStoreConfig struct {
			Root string `mapstructure:"root"`
		}
		var storeCfg fsPayloadStoreConfig
		if err := mapstructure.Decode(cfg.Filesystem, &storeCfg); err != nil {
			return nil, fmt.Errorf("failed to decode filesystem payload store config: %w", err)
		}
		if storeCfg.Root == "" {
			return nil, fmt.Errorf("filesystem payload store: root is required")
		}
		return payloadFs.NewFSPayloadStore(storeCfg.Root), nil
	case "s3":
		var storeCfg payloadS3.S3PayloadStoreConfig
		if err := mapstructure.Decode(cfg.S3, &storeCfg); err != nil {
			return nil, fmt.Errorf("failed to decode s3 payload store config: %w", err)
		}
		return payloadS3.NewS3PayloadStore(ctx, storeCfg)
	default:
		return nil, fmt.Errorf("unknown payload store type: %q", cfg.Type)
	}
}
