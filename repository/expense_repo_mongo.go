package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/apperr"
	"freightdesk/models"
)

type MongoExpenseRepo struct {
	docs mongoDocs[expenseDocument]
}

func NewMongoExpenseRepo(db *mongo.Database) *MongoExpenseRepo {
	return &MongoExpenseRepo{docs: newMongoDocs[expenseDocument](db, expensesCollection, "expense")}
}

func (r *MongoExpenseRepo) Create(ctx context.Context, e *models.Expense) error {
	return r.docs.insert(ctx, toExpenseDocument(e))
}

func (r *MongoExpenseRepo) GetByID(ctx context.Context, id string) (*models.Expense, error) {
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

func (r *MongoExpenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	docs, err := r.docs.find(ctx, bson.M{}, bson.D{{Key: "date", Value: -1}})
	if err != nil {
		return nil, err
	}
	expenses, err := decodeDocs(docs, (*expenseDocument).model)
	if err != nil {
		return nil, apperr.IO("decode expense", err)
	}
	return expenses, nil
}

func (r *MongoExpenseRepo) Update(ctx context.Context, e *models.Expense) error {
	return r.docs.replace(ctx, e.ID, toExpenseDocument(e))
}

func (r *MongoExpenseRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
