// Package library adapts a local SQLite reference database to the record
// store contract the tagging pipeline needs: enumerate a selection, snapshot
// record metadata, add tags, persist.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Store handles reads and tag writes against the library database.
// It implements autotag.RecordStore.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Metadata returns a read-only snapshot of the records named by keys, in key
// order. Keys that do not exist in the library are silently skipped; the
// caller decides whether an empty result is an error.
func (s *Store) Metadata(ctx context.Context, keys []string) ([]Record, error) {
	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		rec, err := s.record(ctx, key)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tags, err := s.ExistingTags(ctx, key)
		if err != nil {
			return nil, err
		}
		rec.Tags = tags
		records = append(records, rec)
	}
	return records, nil
}

// Record mirrors one row of the records table plus its tags.
type Record struct {
	Key         string
	ItemType    string
	Title       string
	Creators    []string
	Publication string
	Date        string
	Abstract    string
	Tags        []string
}

func (s *Store) record(ctx context.Context, key string) (Record, error) {
	query := sq.Select("key", "item_type", "title", "creators", "publication", "date", "abstract").
		From("records").
		Where(sq.Eq{"key": key})

	queryStr, args, err := query.ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("build query: %w", err)
	}

	var rec Record
	var creatorsJSON string
	err = s.db.QueryRowContext(ctx, queryStr, args...).Scan(
		&rec.Key, &rec.ItemType, &rec.Title, &creatorsJSON,
		&rec.Publication, &rec.Date, &rec.Abstract,
	)
	if err != nil {
		return Record{}, err
	}

	if creatorsJSON != "" {
		if err := json.Unmarshal([]byte(creatorsJSON), &rec.Creators); err != nil {
			return Record{}, fmt.Errorf("decode creators for %s: %w", key, err)
		}
	}
	return rec, nil
}

// UntaggedKeys returns the keys of all records that have no tags yet.
func (s *Store) UntaggedKeys(ctx context.Context) ([]string, error) {
	query := sq.Select("r.key").
		From("records r").
		LeftJoin("record_tags t ON t.record_key = r.key").
		Where("t.record_key IS NULL").
		OrderBy("r.key")

	queryStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, queryStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// ExistingTags returns the record's current tags.
func (s *Store) ExistingTags(ctx context.Context, key string) ([]string, error) {
	query := sq.Select("tag").
		From("record_tags").
		Where(sq.Eq{"record_key": key}).
		OrderBy("created_at", "tag")

	queryStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, queryStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// AddTag stages a tag on the record, preserving the tag's casing. Adding a
// tag that is already present byte-identically is a no-op.
func (s *Store) AddTag(ctx context.Context, key, tag string) error {
	now := time.Now().Unix()
	query := sq.Insert("record_tags").
		Options("OR IGNORE").
		Columns("record_key", "tag", "created_at").
		Values(key, tag, now)

	queryStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryStr, args...)
	return err
}

// Save marks the record as updated. Tag rows are durable as soon as AddTag
// returns; Save records the modification time on the record itself.
func (s *Store) Save(ctx context.Context, key string) error {
	now := time.Now().Unix()
	query := sq.Update("records").
		Set("updated_at", now).
		Where(sq.Eq{"key": key})

	queryStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryStr, args...)
	return err
}
