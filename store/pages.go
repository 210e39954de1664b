package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlphaHasher/churchlink-go/models"
)

// PageRepository reads and writes page documents. The document tree is
// stored as one JSON column; the builder owns its shape.
type PageRepository struct {
	db *Database
}

// NewPageRepository creates a page repository.
func NewPageRepository(db *Database) *PageRepository {
	return &PageRepository{db: db}
}

// GetBySlug loads a page document by its URL slug.
func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	row := r.db.Conn.QueryRowContext(ctx,
		`SELECT document FROM pages WHERE slug = ?`, slug)
	return scanPage(row)
}

// GetByID loads a page document by its ID.
func (r *PageRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	row := r.db.Conn.QueryRowContext(ctx,
		`SELECT document FROM pages WHERE id = ?`, id)
	return scanPage(row)
}

// Upsert stores a page document, replacing any existing row with the same ID.
func (r *PageRepository) Upsert(ctx context.Context, page *models.Page) error {
	doc, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to serialize page %s: %w", page.ID, err)
	}

	_, err = r.db.Conn.ExecContext(ctx,
		`INSERT INTO pages (id, slug, title, visible, is_draft, document, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			slug = excluded.slug,
			title = excluded.title,
			visible = excluded.visible,
			is_draft = excluded.is_draft,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		page.ID, page.Slug, page.Title, boolInt(page.Visible), boolInt(page.IsDraft),
		string(doc), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert page %s: %w", page.ID, err)
	}
	return nil
}

// PageSummary is a navigation-level view of a page row.
type PageSummary struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// ListVisible returns summaries of published, visible pages ordered by title.
func (r *PageRepository) ListVisible(ctx context.Context) ([]PageSummary, error) {
	rows, err := r.db.Conn.QueryContext(ctx,
		`SELECT id, slug, title FROM pages WHERE visible = 1 AND is_draft = 0 ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var summaries []PageSummary
	for rows.Next() {
		var s PageSummary
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func scanPage(row *sql.Row) (*models.Page, error) {
	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	var page models.Page
	if err := json.Unmarshal([]byte(doc), &page); err != nil {
		return nil, fmt.Errorf("failed to parse page document: %w", err)
	}
	return &page, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
