package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Profile represents a player profile in the database.
type Profile struct {
	ID             int64
	Name           string
	PassphraseHash string
	CreatedAt      time.Time
}

// ErrProfileNotFound is returned when a profile lookup yields no results.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists is returned when attempting to create a duplicate profile name.
var ErrProfileExists = errors.New("profile already exists")

// ErrInvalidCredentials is returned when authentication fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ProfileRepository provides profile persistence operations.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a ProfileRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile with a bcrypt-hashed passphrase.
//
// Precondition: name must be non-empty; passphrase must be non-empty.
// Postcondition: Returns the created Profile with ID and CreatedAt set,
// or ErrProfileExists if the name is taken.
func (r *ProfileRepository) Create(ctx context.Context, name, passphrase string) (Profile, error) {
	hash, err := HashPassphrase(passphrase)
	if err != nil {
		return Profile{}, fmt.Errorf("hashing passphrase: %w", err)
	}

	var p Profile
	err = r.db.QueryRow(ctx,
		`INSERT INTO profiles (name, passphrase_hash)
		 VALUES ($1, $2)
		 RETURNING id, name, passphrase_hash, created_at`,
		name, hash,
	).Scan(&p.ID, &p.Name, &p.PassphraseHash, &p.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return Profile{}, ErrProfileExists
		}
		return Profile{}, fmt.Errorf("inserting profile: %w", err)
	}

	return p, nil
}

// Authenticate verifies credentials and returns the matching profile.
//
// Precondition: name and passphrase must be non-empty.
// Postcondition: Returns the Profile if credentials are valid,
// ErrProfileNotFound if the name doesn't exist,
// or ErrInvalidCredentials if the passphrase is wrong.
func (r *ProfileRepository) Authenticate(ctx context.Context, name, passphrase string) (Profile, error) {
	p, err := r.GetByName(ctx, name)
	if err != nil {
		return Profile{}, err
	}
	if !CheckPassphrase(passphrase, p.PassphraseHash) {
		return Profile{}, ErrInvalidCredentials
	}
	return p, nil
}

// GetByName retrieves a profile by name.
//
// Precondition: name must be non-empty.
// Postcondition: Returns the Profile or ErrProfileNotFound.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (Profile, error) {
	var p Profile
	err := r.db.QueryRow(ctx,
		`SELECT id, name, passphrase_hash, created_at
		 FROM profiles WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.PassphraseHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, fmt.Errorf("querying profile: %w", err)
	}
	return p, nil
}

// HashPassphrase creates a bcrypt hash of the given passphrase.
//
// Precondition: passphrase must be non-empty.
// Postcondition: Returns a bcrypt hash string.
func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassphrase compares a plaintext passphrase against a bcrypt hash.
//
// Postcondition: Returns true if passphrase matches the hash.
func CheckPassphrase(passphrase, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) == nil
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
