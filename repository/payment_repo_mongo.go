package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/apperr"
	"freightdesk/models"
)

type MongoPaymentRepo struct {
	docs mongoDocs[paymentDocument]
}

func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{docs: newMongoDocs[paymentDocument](db, paymentsCollection, "payment")}
}

func (r *MongoPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.docs.insert(ctx, toPaymentDocument(p))
}

func (r *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
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

func (r *MongoPaymentRepo) List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error) {
	filter := bson.M{}
	if f.ClientID != "" {
		filter["client_id"] = f.ClientID
	}
	docs, err := r.docs.find(ctx, filter, bson.D{{Key: "date", Value: -1}})
	if err != nil {
		return nil, err
	}
	payments, err := decodeDocs(docs, (*paymentDocument).model)
	if err != nil {
		return nil, apperr.IO("decode payment", err)
	}
	return payments, nil
}

func (r *MongoPaymentRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
