package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AlphaHasher/churchlink-go/models"
)

// Asset is an uploaded image with its processed variants.
type Asset struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	Srcset    string `json:"srcset,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"createdAt"`
}

// AssetRepository reads and writes uploaded asset records.
type AssetRepository struct {
	db *Database
}

// NewAssetRepository creates an asset repository.
func NewAssetRepository(db *Database) *AssetRepository {
	return &AssetRepository{db: db}
}

// Get loads one asset by ID. Returns nil when the ID is unknown.
func (r *AssetRepository) Get(ctx context.Context, id string) (*Asset, error) {
	row := r.db.Conn.QueryRowContext(ctx,
		`SELECT id, filename, url, srcset, width, height, created_at
		 FROM assets WHERE id = ?`, id)

	var a Asset
	err := row.Scan(&a.ID, &a.Filename, &a.URL, &a.Srcset, &a.Width, &a.Height, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load asset %s: %w", id, err)
	}
	return &a, nil
}

// Save stores an asset record.
func (r *AssetRepository) Save(ctx context.Context, a *Asset) error {
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := r.db.Conn.ExecContext(ctx,
		`INSERT INTO assets (id, filename, url, srcset, width, height, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			url = excluded.url,
			srcset = excluded.srcset,
			width = excluded.width,
			height = excluded.height`,
		a.ID, a.Filename, a.URL, a.Srcset, a.Width, a.Height, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save asset %s: %w", a.ID, err)
	}
	return nil
}

// Resolver builds an AssetResolver backed by this repository. Lookups that
// fail fall back to treating the reference as a raw URL.
func (r *AssetRepository) Resolver(ctx context.Context) models.AssetResolver {
	return func(assetID string) models.ImageSource {
		a, err := r.Get(ctx, assetID)
		if err != nil || a == nil {
			return models.ImageSource{URL: assetID}
		}
		return models.ImageSource{URL: a.URL, Srcset: a.Srcset}
	}
}
