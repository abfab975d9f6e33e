package editor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Editor is a maintenance-API account. Visitors never authenticate;
// editors do, to append media to the catalog.
type Editor struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	TokenVersion int
	CreatedAt    time.Time
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, e Editor) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO editors (id, username, email, password_hash)
		VALUES (?, ?, ?, ?)
	`, e.ID, e.Username, e.Email, e.PasswordHash)

	if err != nil {
		return fmt.Errorf("create editor: %w", err)
	}
	return nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*Editor, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, token_version, created_at
		FROM editors
		WHERE LOWER(email) = ?
	`, email)
	return scanEditor(row)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*Editor, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, token_version, created_at
		FROM editors
		WHERE username = ?
	`, strings.TrimSpace(username))
	return scanEditor(row)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Editor, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, token_version, created_at
		FROM editors
		WHERE id = ?
	`, id)
	return scanEditor(row)
}

func scanEditor(row *sql.Row) (*Editor, error) {
	var e Editor
	if err := row.Scan(&e.ID, &e.Username, &e.Email, &e.PasswordHash, &e.TokenVersion, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan editor: %w", err)
	}
	return &e, nil
}

func (r *Repo) GetTokenVersion(ctx context.Context, id string) (int, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT token_version
		FROM editors
		WHERE id = ?
	`, id)

	var version int
	if err := row.Scan(&version); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("get token version: %w", err)
	}
	return version, nil
}

func (r *Repo) UpdatePasswordAndBumpTokenVersion(ctx context.Context, id, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE editors
		SET password_hash = ?, token_version = token_version + 1
		WHERE id = ?
	`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update password: editor not found")
	}
	return nil
}

func (r *Repo) BumpTokenVersion(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE editors
		SET token_version = token_version + 1
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("bump token version: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bump token version rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bump token version: editor not found")
	}
	return nil
}
