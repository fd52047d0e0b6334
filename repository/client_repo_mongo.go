package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/models"
)

type MongoClientRepo struct {
	docs mongoDocs[clientDocument]
}

func NewMongoClientRepo(db *mongo.Database) *MongoClientRepo {
	return &MongoClientRepo{docs: newMongoDocs[clientDocument](db, clientsCollection, "client")}
}

func (r *MongoClientRepo) Create(ctx context.Context, c *models.Client) error {
	return r.docs.insert(ctx, toClientDocument(c))
}

func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	doc, err := r.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.model()
}

func (r *MongoClientRepo) List(ctx context.Context) ([]*models.Client, error) {
	docs, err := r.docs.find(ctx, bson.M{}, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return nil, err
	}
	return decodeDocs(docs, (*clientDocument).model)
}

func (r *MongoClientRepo) Update(ctx context.Context, c *models.Client) error {
	return r.docs.replace(ctx, c.ID, toClientDocument(c))
}

func (r *MongoClientRepo) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
