package repository

import (
	"context"
	"database/sql"

	"freightdesk/apperr"
	"freightdesk/models"
)

type PostgresInvoiceRepo struct {
	docs pgDocs[invoiceDocument]
}

func NewPostgresInvoiceRepo(db *sql.DB) *PostgresInvoiceRepo {
	return &PostgresInvoiceRepo{docs: pgDocs[invoiceDocument]{db: db, table: "invoices", entity: "invoice"}}
}

func invoiceColumns(doc *invoiceDocument) []column {
	return []column{
		{"seq", doc.Seq},
		{"client_id", doc.ClientID},
		{"invoice_date", doc.Date},
	}
}

func (r *PostgresInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	doc := toInvoiceDocument(inv)
	return r.docs.insert(ctx, doc.ID, doc, invoiceColumns(doc)...)
}

func (r *PostgresInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv, err := doc.model()
	if err != nil {
		return nil, apperr.IO("decode invoice", err)
	}
	return inv, nil
}

func (r *PostgresInvoiceRepo) List(ctx context.Context, f InvoiceFilter) ([]*models.Invoice, error) {
	var (
		docs []invoiceDocument
		err  error
	)
	if f.ClientID != "" {
		docs, err = r.docs.find(ctx, "client_id = $1", "seq DESC", f.ClientID)
	} else {
		docs, err = r.docs.find(ctx, "", "seq DESC")
	}
	if err != nil {
		return nil, err
	}
	invoices, err := decodeDocs(docs, (*invoiceDocument).model)
	if err != nil {
		return nil, apperr.IO("decode invoice", err)
	}
	return invoices, nil
}

func (r *PostgresInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	doc := toInvoiceDocument(inv)
	return r.docs.update(ctx, doc.ID, doc, invoiceColumns(doc)...)
}

func (r *PostgresInvoiceRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
