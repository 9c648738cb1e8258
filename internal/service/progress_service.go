package service

import (
	"context"

	"streamflix-api/internal/models"
)

const (
	// umbral mínimo para aparecer en "continue watching"
	ContinueWatchingMinSeconds = 30
	ContinueWatchingLimit      = 10
)

type ProgressService struct {
	progress ViewProgressStore
	profiles ProfileStore
	movies   MovieStore
}

func NewProgressService(progress ViewProgressStore, profiles ProfileStore, movies MovieStore) *ProgressService {
	return &ProgressService{progress: progress, profiles: profiles, movies: movies}
}

// Record hace upsert del progreso del par (profile, movie) y agrega la
// película al watch_history del perfil si no estaba.
func (s *ProgressService) Record(ctx context.Context, user *models.UserDoc, profileID, movieID string, req *models.ViewProgressRequest) error {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	mv, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if mv == nil {
		return ErrNotFound
	}

	if err := s.progress.Upsert(ctx, profileID, movieID, req.ProgressSeconds, req.Completed); err != nil {
		return err
	}

	_, err = s.profiles.AddToWatchHistory(ctx, profileID, movieID)
	return err
}

// ContinueWatching junta cada registro con su película; los pares cuya
// película fue borrada se saltan.
func (s *ProgressService) ContinueWatching(ctx context.Context, user *models.UserDoc, profileID string, limit int) ([]models.ContinueWatchingItem, error) {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if limit <= 0 {
		limit = ContinueWatchingLimit
	}

	records, err := s.progress.ListIncomplete(ctx, profileID, ContinueWatchingMinSeconds, limit)
	if err != nil {
		return nil, err
	}

	out := []models.ContinueWatchingItem{}
	for _, rec := range records {
		mv, err := s.movies.FindByID(ctx, rec.MovieID)
		if err != nil {
			return nil, err
		}
		if mv == nil {
			continue
		}
		out = append(out, models.ContinueWatchingItem{Movie: *mv, Progress: rec})
	}
	return out, nil
}
