package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/apperr"
)

// Collection names.
const (
	lorryReceiptsCollection = "lorry_receipts"
	invoicesCollection      = "invoices"
	clientsCollection       = "clients"
	paymentsCollection      = "payments"
	expensesCollection      = "expenses"
	settingsCollection      = "settings"
)

// mongoDocs wraps one collection of storage documents keyed by string _id.
type mongoDocs[D any] struct {
	coll   *mongo.Collection
	entity string
}

func newMongoDocs[D any](db *mongo.Database, collection, entity string) mongoDocs[D] {
	return mongoDocs[D]{coll: db.Collection(collection), entity: entity}
}

func (m mongoDocs[D]) insert(ctx context.Context, doc *D) error {
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("%s already exists", m.entity)
		}
		return apperr.IO("insert "+m.entity, err)
	}
	return nil
}

func (m mongoDocs[D]) get(ctx context.Context, id string) (*D, error) {
	var doc D
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(m.entity, id)
	}
	if err != nil {
		return nil, apperr.IO("get "+m.entity, err)
	}
	return &doc, nil
}

func (m mongoDocs[D]) find(ctx context.Context, filter bson.M, sort bson.D) ([]D, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.IO("list "+m.entity, err)
	}
	defer cur.Close(ctx)

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperr.IO("decode "+m.entity, err)
	}
	return docs, nil
}

func (m mongoDocs[D]) replace(ctx context.Context, id string, doc *D) error {
	res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("%s already exists", m.entity)
		}
		return apperr.IO("update "+m.entity, err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(m.entity, id)
	}
	return nil
}

func (m mongoDocs[D]) upsert(ctx context.Context, id string, doc *D) error {
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return apperr.IO("save "+m.entity, err)
	}
	return nil
}

func (m mongoDocs[D]) delete(ctx context.Context, id string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.IO("delete "+m.entity, err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound(m.entity, id)
	}
	return nil
}

// EnsureMongoIndexes creates the indexes the repositories rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		lorryReceiptsCollection: {
			{Keys: bson.D{{Key: "lr_number", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "consignor_id", Value: 1}}},
			{Keys: bson.D{{Key: "billing_status", Value: 1}}},
		},
		invoicesCollection: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
			{Keys: bson.D{{Key: "lr_ids", Value: 1}}},
		},
		paymentsCollection: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
		},
	}
	for name, idx := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return apperr.IO("create indexes on "+name, err)
		}
	}
	return nil
}

func decodeDocs[D any, M any](docs []D, model func(*D) (M, error)) ([]M, error) {
	out := make([]M, 0, len(docs))
	for i := range docs {
		m, err := model(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
