package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"portfoliohub/pkg/models"
)

// Journal persists AppendMedia mutations so maintenance edits outlive a
// restart of the otherwise load-time-constant catalog. The journal is
// write-behind: the in-memory repository stays the source of truth for
// reads, the journal is only replayed over a freshly loaded catalog.
type Journal struct {
	DB *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{DB: db}
}

func (j *Journal) Record(ctx context.Context, projectID, sectionID string, item models.MediaItem) error {
	_, err := j.DB.ExecContext(ctx, `
		INSERT INTO media_appends (project_id, section_id, media_type, src, caption)
		VALUES (?, ?, ?, ?, ?)
	`, projectID, sectionID, item.Type, item.Src, item.Caption)
	if err != nil {
		return fmt.Errorf("record media append: %w", err)
	}
	return nil
}

// Replay re-applies journaled appends in original order. Rows whose target
// project or section no longer exists in the authored catalog are skipped;
// the count of applied rows is returned.
func (j *Journal) Replay(ctx context.Context, repo *Repository) (int, error) {
	rows, err := j.DB.QueryContext(ctx, `
		SELECT project_id, section_id, media_type, src, caption
		FROM media_appends
		ORDER BY seq ASC
	`)
	if err != nil {
		return 0, fmt.Errorf("replay query: %w", err)
	}
	defer rows.Close()

	applied := 0
	for rows.Next() {
		var projectID, sectionID string
		var item models.MediaItem
		if err := rows.Scan(&projectID, &sectionID, &item.Type, &item.Src, &item.Caption); err != nil {
			return applied, fmt.Errorf("replay scan: %w", err)
		}
		if repo.AppendMedia(projectID, sectionID, item) {
			applied++
		}
	}
	if err := rows.Err(); err != nil {
		return applied, fmt.Errorf("replay rows: %w", err)
	}
	return applied, nil
}
