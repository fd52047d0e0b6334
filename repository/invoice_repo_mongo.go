package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/apperr"
	"freightdesk/models"
)

type MongoInvoiceRepo struct {
	docs mongoDocs[invoiceDocument]
}

func NewMongoInvoiceRepo(db *mongo.Database) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{docs: newMongoDocs[invoiceDocument](db, invoicesCollection, "invoice")}
}

func (r *MongoInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	return r.docs.insert(ctx, toInvoiceDocument(inv))
}

func (r *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
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

func (r *MongoInvoiceRepo) List(ctx context.Context, f InvoiceFilter) ([]*models.Invoice, error) {
	filter := bson.M{}
	if f.ClientID != "" {
		filter["client_id"] = f.ClientID
	}
	docs, err := r.docs.find(ctx, filter, bson.D{{Key: "seq", Value: -1}})
	if err != nil {
		return nil, err
	}
	invoices, err := decodeDocs(docs, (*invoiceDocument).model)
	if err != nil {
		return nil, apperr.IO("decode invoice", err)
	}
	return invoices, nil
}

func (r *MongoInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	return r.docs.replace(ctx, inv.ID, toInvoiceDocument(inv))
}

func (r *MongoInvoiceRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
