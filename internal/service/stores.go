package service

import (
	"context"

	"streamflix-api/internal/models"
)

// Interfaces mínimas sobre los repositorios, para poder inyectar
// fakes en los tests.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id string) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	PushProfileID(ctx context.Context, userID, profileID string) error
	PullProfileID(ctx context.Context, userID, profileID string) error
}

type ProfileStore interface {
	FindOwned(ctx context.Context, profileID, userID string) (*models.ProfileDoc, error)
	FindByUser(ctx context.Context, userID string) ([]models.ProfileDoc, error)
	Insert(ctx context.Context, p *models.ProfileDoc) error
	UpdateFields(ctx context.Context, profileID string, fields map[string]any) error
	Delete(ctx context.Context, profileID string) error
	AddToWatchlist(ctx context.Context, profileID, movieID string) (bool, error)
	RemoveFromWatchlist(ctx context.Context, profileID, movieID string) error
	AddToWatchHistory(ctx context.Context, profileID, movieID string) (bool, error)
}

type MovieStore interface {
	FindByKey(ctx context.Context, key string) (*models.MovieDoc, error)
	FindByID(ctx context.Context, id string) (*models.MovieDoc, error)
	FindBySlug(ctx context.Context, slug string) (*models.MovieDoc, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.MovieDoc, error)
	Search(ctx context.Context, category string, year int, search string, limit int) ([]models.MovieDoc, error)
	Insert(ctx context.Context, mv *models.MovieDoc) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ViewProgressStore interface {
	Upsert(ctx context.Context, profileID, movieID string, seconds int, completed bool) error
	ListIncomplete(ctx context.Context, profileID string, minSeconds, limit int) ([]models.ViewProgressDoc, error)
}
