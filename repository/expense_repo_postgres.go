package repository

import (
	"context"
	"database/sql"

	"freightdesk/apperr"
	"freightdesk/models"
)

type PostgresExpenseRepo struct {
	docs pgDocs[expenseDocument]
}

func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{docs: pgDocs[expenseDocument]{db: db, table: "expenses", entity: "expense"}}
}

func (r *PostgresExpenseRepo) Create(ctx context.Context, e *models.Expense) error {
	doc := toExpenseDocument(e)
	return r.docs.insert(ctx, doc.ID, doc, column{"expense_date", doc.Date})
}

func (r *PostgresExpenseRepo) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := doc.model()
	if err != nil {
		return nil, apperr.IO("decode expense", err)
	}
	return e, nil
}

func (r *PostgresExpenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	docs, err := r.docs.find(ctx, "", "expense_date DESC")
	if err != nil {
		return nil, err
	}
	expenses, err := decodeDocs(docs, (*expenseDocument).model)
	if err != nil {
		return nil, apperr.IO("decode expense", err)
	}
	return expenses, nil
}

func (r *PostgresExpenseRepo) Update(ctx context.Context, e *models.Expense) error {
	doc := toExpenseDocument(e)
	return r.docs.update(ctx, doc.ID, doc, column{"expense_date", doc.Date})
}

func (r *PostgresExpenseRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
