package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"freightdesk/apperr"
	"freightdesk/models"
)

type PostgresLorryReceiptRepo struct {
	docs pgDocs[lrDocument]
}

func NewPostgresLorryReceiptRepo(db *sql.DB) *PostgresLorryReceiptRepo {
	return &PostgresLorryReceiptRepo{docs: pgDocs[lrDocument]{db: db, table: "lorry_receipts", entity: "lorry receipt"}}
}

func lrColumns(doc *lrDocument) []column {
	return []column{
		{"lr_number", doc.LRNumber},
		{"seq", doc.Seq},
		{"lr_date", doc.Date},
		{"consignor_id", doc.ConsignorID},
		{"consignee_id", doc.ConsigneeID},
		{"billing_status", doc.BillingStatus},
		{"status", doc.Status},
	}
}

func (r *PostgresLorryReceiptRepo) Create(ctx context.Context, lr *models.LorryReceipt) error {
	doc := toLRDocument(lr)
	return r.docs.insert(ctx, doc.ID, doc, lrColumns(doc)...)
}

func (r *PostgresLorryReceiptRepo) GetByID(ctx context.Context, id string) (*models.LorryReceipt, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	lr, err := doc.model()
	if err != nil {
		return nil, apperr.IO("decode lorry receipt", err)
	}
	return lr, nil
}

func (r *PostgresLorryReceiptRepo) FindMany(ctx context.Context, ids []string) ([]*models.LorryReceipt, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, "id = ANY($1)", pq.Array(ids))
}

func (r *PostgresLorryReceiptRepo) List(ctx context.Context, f LRFilter) ([]*models.LorryReceipt, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ConsignorID != "" {
		add("consignor_id = $%d", f.ConsignorID)
	}
	if f.PartyID != "" {
		args = append(args, f.PartyID)
		conds = append(conds, fmt.Sprintf("(consignor_id = $%[1]d OR consignee_id = $%[1]d)", len(args)))
	}
	if f.BillingStatus != "" {
		add("billing_status = $%d", string(f.BillingStatus))
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	return r.find(ctx, strings.Join(conds, " AND "), args...)
}

func (r *PostgresLorryReceiptRepo) find(ctx context.Context, where string, args ...any) ([]*models.LorryReceipt, error) {
	docs, err := r.docs.find(ctx, where, "seq DESC", args...)
	if err != nil {
		return nil, err
	}
	lrs, err := decodeDocs(docs, (*lrDocument).model)
	if err != nil {
		return nil, apperr.IO("decode lorry receipt", err)
	}
	return lrs, nil
}

func (r *PostgresLorryReceiptRepo) Update(ctx context.Context, lr *models.LorryReceipt) error {
	doc := toLRDocument(lr)
	return r.docs.update(ctx, doc.ID, doc, lrColumns(doc)...)
}

func (r *PostgresLorryReceiptRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
