package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"textkit/config"
)

// CurrentSchemaVersion is the current storage schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var (
	keySchemaVersion = []byte("schema_version")
	keyConfigHash    = []byte("config_hash")
)

// SchemaInfo stores schema version and configuration hash.
type SchemaInfo struct {
	Version    int    `json:"version"`
	ConfigHash string `json:"config_hash"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)
		if b == nil {
			return nil
		}

		versionData := b.Get(keySchemaVersion)
		if versionData != nil {
			if err := json.Unmarshal(versionData, &info.Version); err != nil {
				info.Version = 0
			}
		}

		hashData := b.Get(keyConfigHash)
		if hashData != nil {
			info.ConfigHash = string(hashData)
		}

		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}

		return b.Put(keyConfigHash, []byte(info.ConfigHash))
	})
}

// ComputeConfigHash hashes the settings that shape stored token streams.
// A changed hash means the corpus must be re-ingested.
func ComputeConfigHash(cfg *config.Config) string {
	relevant := struct {
		Lowercase     bool     `json:"lowercase"`
		RemovePunct   bool     `json:"remove_punct"`
		RemoveNumbers bool     `json:"remove_numbers"`
		RemoveStops   bool     `json:"remove_stops"`
		ExtraStops    []string `json:"extra_stops"`
		Stemming      bool     `json:"stemming"`
		MinChars      int      `json:"min_chars"`
		StripHTML     bool     `json:"strip_html"`
		TextField     string   `json:"text_field"`
	}{
		Lowercase:     cfg.Tokens.Lowercase,
		RemovePunct:   cfg.Tokens.RemovePunct,
		RemoveNumbers: cfg.Tokens.RemoveNumbers,
		RemoveStops:   cfg.Tokens.RemoveStops,
		ExtraStops:    cfg.Tokens.ExtraStopwords,
		Stemming:      cfg.Tokens.Stemming,
		MinChars:      cfg.Tokens.MinChars,
		StripHTML:     cfg.Clean.StripHTML,
		TextField:     cfg.Corpus.TextField,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	NeedsRebuild bool
	OldVersion   int
	NewVersion   int
	Reason       string
}

// CheckMigration reports whether the stored corpus matches the current
// schema and tokenization settings.
func (s *BoltStore) CheckMigration(cfg *config.Config) (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	if info.Version > CurrentSchemaVersion {
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("database created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	newHash := ComputeConfigHash(cfg)
	if info.ConfigHash != "" && info.ConfigHash != newHash {
		result.NeedsRebuild = true
		result.Reason = "tokenization configuration changed"
	}

	return result, nil
}

// MarkCurrent records the current schema version and config hash, called
// after a successful ingest.
func (s *BoltStore) MarkCurrent(cfg *config.Config) error {
	return s.SetSchemaInfo(&SchemaInfo{
		Version:    CurrentSchemaVersion,
		ConfigHash: ComputeConfigHash(cfg),
	})
}
