package repository

import (
	"context"
	"database/sql"

	"freightdesk/apperr"
	"freightdesk/models"
)

type PostgresPaymentRepo struct {
	docs pgDocs[paymentDocument]
}

func NewPostgresPaymentRepo(db *sql.DB) *PostgresPaymentRepo {
	return &PostgresPaymentRepo{docs: pgDocs[paymentDocument]{db: db, table: "payments", entity: "payment"}}
}

func (r *PostgresPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	doc := toPaymentDocument(p)
	return r.docs.insert(ctx, doc.ID, doc,
		column{"client_id", doc.ClientID},
		column{"payment_date", doc.Date},
	)
}

func (r *PostgresPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := doc.model()
	if err != nil {
		return nil, apperr.IO("decode payment", err)
	}
	return p, nil
}

func (r *PostgresPaymentRepo) List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error) {
	var (
		docs []paymentDocument
		err  error
	)
	if f.ClientID != "" {
		docs, err = r.docs.find(ctx, "client_id = $1", "payment_date DESC", f.ClientID)
	} else {
		docs, err = r.docs.find(ctx, "", "payment_date DESC")
	}
	if err != nil {
		return nil, err
	}
	payments, err := decodeDocs(docs, (*paymentDocument).model)
	if err != nil {
		return nil, apperr.IO("decode payment", err)
	}
	return payments, nil
}

func (r *PostgresPaymentRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
