package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/apperr"
	"freightdesk/models"
)

type MongoLorryReceiptRepo struct {
	docs mongoDocs[lrDocument]
}

func NewMongoLorryReceiptRepo(db *mongo.Database) *MongoLorryReceiptRepo {
	return &MongoLorryReceiptRepo{docs: newMongoDocs[lrDocument](db, lorryReceiptsCollection, "lorry receipt")}
}

func (r *MongoLorryReceiptRepo) Create(ctx context.Context, lr *models.LorryReceipt) error {
	return r.docs.insert(ctx, toLRDocument(lr))
}

func (r *MongoLorryReceiptRepo) GetByID(ctx context.Context, id string) (*models.LorryReceipt, error) {
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

func (r *MongoLorryReceiptRepo) FindMany(ctx context.Context, ids []string) ([]*models.LorryReceipt, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoLorryReceiptRepo) List(ctx context.Context, f LRFilter) ([]*models.LorryReceipt, error) {
	filter := bson.M{}
	if f.ConsignorID != "" {
		filter["consignor_id"] = f.ConsignorID
	}
	if f.PartyID != "" {
		filter["$or"] = bson.A{
			bson.M{"consignor_id": f.PartyID},
			bson.M{"consignee_id": f.PartyID},
		}
	}
	if f.BillingStatus != "" {
		filter["billing_status"] = string(f.BillingStatus)
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	return r.find(ctx, filter)
}

func (r *MongoLorryReceiptRepo) find(ctx context.Context, filter bson.M) ([]*models.LorryReceipt, error) {
	docs, err := r.docs.find(ctx, filter, bson.D{{Key: "seq", Value: -1}})
	if err != nil {
		return nil, err
	}
	lrs, err := decodeDocs(docs, (*lrDocument).model)
	if err != nil {
		return nil, apperr.IO("decode lorry receipt", err)
	}
	return lrs, nil
}

func (r *MongoLorryReceiptRepo) Update(ctx context.Context, lr *models.LorryReceipt) error {
	return r.docs.replace(ctx, lr.ID, toLRDocument(lr))
}

func (r *MongoLorryReceiptRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
