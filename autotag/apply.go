package autotag

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// RecordStore is the write-side contract the apply step needs from the
// external record store. AddTag stages a tag on the record; Save persists
// the record durably before the next read.
type RecordStore interface {
	ExistingTags(ctx context.Context, key string) ([]string, error)
	AddTag(ctx context.Context, key, tag string) error
	Save(ctx context.Context, key string) error
}

// Apply merges the edited suggestions into the records' existing tag
// collections, case-insensitively de-duplicated. Only the keys captured in
// the records snapshot at run start are eligible; suggestions for unknown
// keys are dropped. A record counts as tagged only when at least one tag was
// actually added. There is no rollback: a store error partway through leaves
// already-saved records tagged and aborts the rest.
func Apply(ctx context.Context, store RecordStore, records []RecordMetadata, suggestions []TagSuggestion, log zerolog.Logger) (int, error) {
	eligible := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Key != "" {
			eligible[rec.Key] = true
		}
	}

	tagged := 0
	for _, sug := range suggestions {
		if len(sug.Tags) == 0 {
			continue
		}
		if !eligible[sug.RecordKey] {
			log.Debug().Str("key", sug.RecordKey).Msg("dropping suggestion for key outside the run's record batch")
			continue
		}

		existing, err := store.ExistingTags(ctx, sug.RecordKey)
		if err != nil {
			return tagged, err
		}
		present := make(map[string]bool, len(existing))
		for _, tag := range existing {
			present[strings.ToLower(tag)] = true
		}

		changed := false
		for _, tag := range sug.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			lower := strings.ToLower(tag)
			if present[lower] {
				continue
			}
			if err := store.AddTag(ctx, sug.RecordKey, tag); err != nil {
				return tagged, err
			}
			present[lower] = true
			changed = true
		}

		if changed {
			if err := store.Save(ctx, sug.RecordKey); err != nil {
				return tagged, err
			}
			tagged++
		}
	}
	return tagged, nil
}
