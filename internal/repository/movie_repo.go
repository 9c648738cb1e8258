package repository

import (
	"context"

	"streamflix-api/internal/db"
	"streamflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(m *db.Mongo) *MovieRepository {
	return &MovieRepository{col: m.Collection("movies")}
}

// FindByKey busca por id o por slug en una sola query.
func (r *MovieRepository) FindByKey(ctx context.Context, key string) (*models.MovieDoc, error) {
	var mv models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"id": key},
		bson.M{"slug": key},
	}}).Decode(&mv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &mv, err
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*models.MovieDoc, error) {
	var mv models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&mv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &mv, err
}

func (r *MovieRepository) FindBySlug(ctx context.Context, slug string) (*models.MovieDoc, error) {
	var mv models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&mv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &mv, err
}

func (r *MovieRepository) FindByIDs(ctx context.Context, ids []string) ([]models.MovieDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeMovies(ctx, cur)
}

// Search filtra por categoría, año y texto; el texto matchea título
// O descripción con regex case-insensitive.
func (r *MovieRepository) Search(ctx context.Context, category string, year int, search string, limit int) ([]models.MovieDoc, error) {
	filter := bson.M{}

	if category != "" {
		filter["category"] = category
	}
	if year > 0 {
		filter["release_year"] = year
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeMovies(ctx, cur)
}

func (r *MovieRepository) Insert(ctx context.Context, mv *models.MovieDoc) error {
	_, err := r.col.InsertOne(ctx, mv)
	return err
}

// UpdateFields aplica un $set parcial sobre la película.
func (r *MovieRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M(fields)},
	)
	return err
}

// Delete borra la película; no limpia referencias en perfiles
// ni en view_progress.
func (r *MovieRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func decodeMovies(ctx context.Context, cur *mongo.Cursor) ([]models.MovieDoc, error) {
	var out []models.MovieDoc
	for cur.Next(ctx) {
		var mv models.MovieDoc
		if err := cur.Decode(&mv); err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, cur.Err()
}
