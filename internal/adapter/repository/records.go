// Package repository adapts PocketBase records to the domain models.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// Store is the generic document-access layer shared by the entity
// repositories. One attempt per call, no retries; transport failures
// propagate to the caller as plain errors.
//
// Listing calls are lenient about ordering: when the sorted query fails
// (e.g. a renamed sort field), they fall back to an unsorted full listing
// instead of failing the caller. The fallback is logged as a warning.
type Store struct {
	app core.App
}

func NewStore(app core.App) *Store {
	return &Store{app: app}
}

// ListAll returns every record of the collection, ascending by sortField
// with ties broken by id.
func (s *Store) ListAll(collection, sortField string) ([]*core.Record, error) {
	if sortField == "" {
		sortField = "order"
	}
	records, err := s.app.FindRecordsByFilter(collection, "1=1", sortField+",id", 0, 0)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).Str("sort", sortField).
			Msg("sorted listing failed, retrying unsorted")
		return s.app.FindRecordsByFilter(collection, "1=1", "", 0, 0)
	}
	return records, nil
}

// ListActive is ListAll restricted to is_active = true, with the same
// unsorted fallback on query failure.
func (s *Store) ListActive(collection string) ([]*core.Record, error) {
	records, err := s.app.FindRecordsByFilter(collection, "is_active = true", "order,id", 0, 0)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).
			Msg("active listing failed, falling back to full listing")
		return s.ListAll(collection, "order")
	}
	return records, nil
}

// GetByID returns (nil, nil) when the record does not exist. An error is
// returned only for transport failures.
func (s *Store) GetByID(collection, id string) (*core.Record, error) {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return record, nil
}

// Create inserts a new record and returns its id. PocketBase stamps the
// created/updated autodate fields at write time.
func (s *Store) Create(collection string, fields map[string]any) (string, error) {
	col, err := s.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return "", fmt.Errorf("collection %s: %w", collection, err)
	}
	record := core.NewRecord(col)
	for k, v := range fields {
		record.Set(k, v)
	}
	if err := s.app.Save(record); err != nil {
		return "", fmt.Errorf("create %s: %w", collection, err)
	}
	return record.Id, nil
}

// Upsert merge-writes the record with the given fixed id, creating it when
// absent. Used for singleton entities and idempotent seeding only.
func (s *Store) Upsert(collection, id string, fields map[string]any) error {
	record, err := s.GetByID(collection, id)
	if err != nil {
		return err
	}
	if record == nil {
		col, err := s.app.FindCollectionByNameOrId(collection)
		if err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
		record = core.NewRecord(col)
		record.Set("id", id)
	}
	for k, v := range fields {
		record.Set(k, v)
	}
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update merge-writes the given fields onto an existing record, refreshing
// its updated timestamp.
func (s *Store) Update(collection, id string, fields map[string]any) error {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	for k, v := range fields {
		record.Set(k, v)
	}
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete hard-deletes a record. Non-recoverable.
func (s *Store) Delete(collection, id string) error {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}
