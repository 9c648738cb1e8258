package repository

import (
	"context"
	"time"

	"streamflix-api/internal/db"
	"streamflix-api/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ViewProgressRepository struct {
	col *mongo.Collection
}

func NewViewProgressRepository(m *db.Mongo) *ViewProgressRepository {
	return &ViewProgressRepository{col: m.Collection("view_progress")}
}

// Upsert mantiene exactamente un registro por par (profile, movie):
// actualiza si existe, inserta si no.
func (r *ViewProgressRepository) Upsert(ctx context.Context, profileID, movieID string, seconds int, completed bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"profile_id": profileID, "movie_id": movieID},
		bson.M{
			"$set": bson.M{
				"progress_seconds": seconds,
				"completed":        completed,
				"last_watched":     time.Now().UTC().Format(time.RFC3339),
			},
			"$setOnInsert": bson.M{"id": uuid.NewString()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListIncomplete devuelve los registros no completados por encima del
// umbral, ordenados por last_watched descendente.
func (r *ViewProgressRepository) ListIncomplete(ctx context.Context, profileID string, minSeconds, limit int) ([]models.ViewProgressDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{
			"profile_id":       profileID,
			"completed":        false,
			"progress_seconds": bson.M{"$gt": minSeconds},
		},
		options.Find().
			SetSort(bson.D{{Key: "last_watched", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ViewProgressDoc
	for cur.Next(ctx) {
		var vp models.ViewProgressDoc
		if err := cur.Decode(&vp); err != nil {
			return nil, err
		}
		out = append(out, vp)
	}
	return out, cur.Err()
}
