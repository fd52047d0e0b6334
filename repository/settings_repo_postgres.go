package repository

import (
	"context"
	"database/sql"
	"time"

	"freightdesk/models"
)

type PostgresSettingsRepo struct {
	docs pgDocs[profileDocument]
}

func NewPostgresSettingsRepo(db *sql.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{docs: pgDocs[profileDocument]{db: db, table: "settings", entity: "company profile"}}
}

// SaveProfile inserts or replaces the company profile.
func (r *PostgresSettingsRepo) SaveProfile(ctx context.Context, p *models.CompanyProfile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	return r.docs.upsert(ctx, profileID, toProfileDocument(p))
}

func (r *PostgresSettingsRepo) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	doc, err := r.docs.get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return doc.model()
}
