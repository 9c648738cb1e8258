package repository

import (
	"context"

	"streamflix-api/internal/db"
	"streamflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(m *db.Mongo) *UserRepository {
	return &UserRepository{col: m.Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) PushProfileID(ctx context.Context, userID, profileID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$push": bson.M{"profiles": profileID}},
	)
	return err
}

func (r *UserRepository) PullProfileID(ctx context.Context, userID, profileID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$pull": bson.M{"profiles": profileID}},
	)
	return err
}
