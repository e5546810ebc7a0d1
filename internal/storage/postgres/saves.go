package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hennsa/Aon-sub000/internal/game/character"
)

// ErrSaveNotFound is returned when a save lookup yields no results.
var ErrSaveNotFound = errors.New("save not found")

// ErrNoActiveSave is returned when a profile has no active save for a series.
var ErrNoActiveSave = errors.New("no active save for series")

// Save is a persisted game state in a named slot belonging to a profile.
type Save struct {
	ID        int64
	ProfileID int64
	Slot      string
	State     character.GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveRepository provides game-state persistence operations.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Put writes state into the given slot, creating or replacing it.
//
// Precondition: profileID must reference an existing profile; slot must be non-empty.
// Postcondition: The slot holds state; a subsequent Get round-trips it.
func (r *SaveRepository) Put(ctx context.Context, profileID int64, slot string, state character.GameState) (Save, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return Save{}, fmt.Errorf("encoding game state: %w", err)
	}

	var s Save
	var raw []byte
	err = r.db.QueryRow(ctx, `
		INSERT INTO saves (profile_id, slot, state)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, slot)
		DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
		RETURNING id, profile_id, slot, state, created_at, updated_at`,
		profileID, slot, payload,
	).Scan(&s.ID, &s.ProfileID, &s.Slot, &raw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return Save{}, fmt.Errorf("upserting save: %w", err)
	}
	if err := json.Unmarshal(raw, &s.State); err != nil {
		return Save{}, fmt.Errorf("decoding game state: %w", err)
	}
	return s, nil
}

// Get retrieves the save in the given slot.
//
// Postcondition: Returns the Save or ErrSaveNotFound.
func (r *SaveRepository) Get(ctx context.Context, profileID int64, slot string) (Save, error) {
	var s Save
	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT id, profile_id, slot, state, created_at, updated_at
		FROM saves WHERE profile_id = $1 AND slot = $2`,
		profileID, slot,
	).Scan(&s.ID, &s.ProfileID, &s.Slot, &raw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Save{}, ErrSaveNotFound
		}
		return Save{}, fmt.Errorf("querying save: %w", err)
	}
	if err := json.Unmarshal(raw, &s.State); err != nil {
		return Save{}, fmt.Errorf("decoding game state: %w", err)
	}
	return s, nil
}

// List returns all saves for the given profile, oldest first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *SaveRepository) List(ctx context.Context, profileID int64) ([]Save, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, slot, state, created_at, updated_at
		FROM saves WHERE profile_id = $1 ORDER BY created_at ASC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	defer rows.Close()

	saves := make([]Save, 0)
	for rows.Next() {
		var s Save
		var raw []byte
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Slot, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		if err := json.Unmarshal(raw, &s.State); err != nil {
			return nil, fmt.Errorf("decoding game state: %w", err)
		}
		saves = append(saves, s)
	}
	return saves, rows.Err()
}

// Delete removes the save in the given slot.
//
// Postcondition: Returns nil on success, ErrSaveNotFound if no row was deleted.
func (r *SaveRepository) Delete(ctx context.Context, profileID int64, slot string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM saves WHERE profile_id = $1 AND slot = $2`,
		profileID, slot,
	)
	if err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaveNotFound
	}
	return nil
}

// SetActive marks slot as the profile's active save for a series.
//
// Precondition: The slot must exist for the profile.
// Postcondition: Active returns slot for the profile and series.
func (r *SaveRepository) SetActive(ctx context.Context, profileID int64, seriesID, slot string) error {
	if _, err := r.Get(ctx, profileID, slot); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO active_saves (profile_id, series_id, slot)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, series_id)
		DO UPDATE SET slot = EXCLUDED.slot`,
		profileID, seriesID, slot,
	)
	if err != nil {
		return fmt.Errorf("setting active save: %w", err)
	}
	return nil
}

// Active returns the profile's active save for a series.
//
// Postcondition: Returns the Save, ErrNoActiveSave when none is marked, or
// ErrSaveNotFound when the marked slot no longer exists.
func (r *SaveRepository) Active(ctx context.Context, profileID int64, seriesID string) (Save, error) {
	var slot string
	err := r.db.QueryRow(ctx,
		`SELECT slot FROM active_saves WHERE profile_id = $1 AND series_id = $2`,
		profileID, seriesID,
	).Scan(&slot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Save{}, ErrNoActiveSave
		}
		return Save{}, fmt.Errorf("querying active save: %w", err)
	}
	return r.Get(ctx, profileID, slot)
}
