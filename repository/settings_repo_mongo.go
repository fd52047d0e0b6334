package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"freightdesk/models"
)

type MongoSettingsRepo struct {
	docs mongoDocs[profileDocument]
}

func NewMongoSettingsRepo(db *mongo.Database) *MongoSettingsRepo {
	return &MongoSettingsRepo{docs: newMongoDocs[profileDocument](db, settingsCollection, "company profile")}
}

func (r *MongoSettingsRepo) SaveProfile(ctx context.Context, p *models.CompanyProfile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	return r.docs.upsert(ctx, profileID, toProfileDocument(p))
}

func (r *MongoSettingsRepo) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	doc, err := r.docs.get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return doc.model()
}
