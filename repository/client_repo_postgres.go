package repository

import (
	"context"
	"database/sql"

	"freightdesk/models"
)

type PostgresClientRepo struct {
	docs pgDocs[clientDocument]
}

func NewPostgresClientRepo(db *sql.DB) *PostgresClientRepo {
	return &PostgresClientRepo{docs: pgDocs[clientDocument]{db: db, table: "clients", entity: "client"}}
}

func (r *PostgresClientRepo) Create(ctx context.Context, c *models.Client) error {
	doc := toClientDocument(c)
	return r.docs.insert(ctx, doc.ID, doc, column{"name", doc.Name})
}

func (r *PostgresClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.model()
}

func (r *PostgresClientRepo) List(ctx context.Context) ([]*models.Client, error) {
	docs, err := r.docs.find(ctx, "", "name ASC")
	if err != nil {
		return nil, err
	}
	return decodeDocs(docs, (*clientDocument).model)
}

func (r *PostgresClientRepo) Update(ctx context.Context, c *models.Client) error {
	doc := toClientDocument(c)
	return r.docs.update(ctx, doc.ID, doc, column{"name", doc.Name})
}

func (r *PostgresClientRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
