package repository

import (
	"context"

	"streamflix-api/internal/db"
	"streamflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(m *db.Mongo) *ProfileRepository {
	return &ProfileRepository{col: m.Collection("profiles")}
}

// FindOwned busca un perfil por id Y dueño; un perfil ajeno
// se reporta igual que uno inexistente.
func (r *ProfileRepository) FindOwned(ctx context.Context, profileID, userID string) (*models.ProfileDoc, error) {
	var p models.ProfileDoc
	err := r.col.FindOne(ctx, bson.M{"id": profileID, "user_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) ([]models.ProfileDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProfileDoc
	for cur.Next(ctx) {
		var p models.ProfileDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

func (r *ProfileRepository) Insert(ctx context.Context, p *models.ProfileDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// UpdateFields aplica un $set parcial sobre el perfil.
func (r *ProfileRepository) UpdateFields(ctx context.Context, profileID string, fields map[string]any) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": profileID},
		bson.M{"$set": bson.M(fields)},
	)
	return err
}

func (r *ProfileRepository) Delete(ctx context.Context, profileID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"id": profileID})
	return err
}

// AddToWatchlist agrega con $addToSet; devuelve false si ya estaba.
func (r *ProfileRepository) AddToWatchlist(ctx context.Context, profileID, movieID string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": profileID},
		bson.M{"$addToSet": bson.M{"watchlist": movieID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *ProfileRepository) RemoveFromWatchlist(ctx context.Context, profileID, movieID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": profileID},
		bson.M{"$pull": bson.M{"watchlist": movieID}},
	)
	return err
}

func (r *ProfileRepository) AddToWatchHistory(ctx context.Context, profileID, movieID string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": profileID},
		bson.M{"$addToSet": bson.M{"watch_history": movieID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
