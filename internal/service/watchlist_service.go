package service

import (
	"context"

	"streamflix-api/internal/models"
)

type WatchlistService struct {
	profiles ProfileStore
	movies   MovieStore
}

func NewWatchlistService(profiles ProfileStore, movies MovieStore) *WatchlistService {
	return &WatchlistService{profiles: profiles, movies: movies}
}

func (s *WatchlistService) List(ctx context.Context, user *models.UserDoc, profileID string) ([]models.MovieDoc, error) {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if len(p.Watchlist) == 0 {
		return []models.MovieDoc{}, nil
	}

	out, err := s.movies.FindByIDs(ctx, p.Watchlist)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.MovieDoc{}
	}
	return out, nil
}

// Add es idempotente: devuelve added=false si la película ya estaba.
func (s *WatchlistService) Add(ctx context.Context, user *models.UserDoc, profileID, movieID string) (bool, error) {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, ErrNotFound
	}

	mv, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return false, err
	}
	if mv == nil {
		return false, ErrNotFound
	}

	return s.profiles.AddToWatchlist(ctx, profileID, movieID)
}

// Remove es no-op si la película no estaba en la lista.
func (s *WatchlistService) Remove(ctx context.Context, user *models.UserDoc, profileID, movieID string) error {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	return s.profiles.RemoveFromWatchlist(ctx, profileID, movieID)
}

func (s *WatchlistService) Check(ctx context.Context, user *models.UserDoc, profileID, movieID string) (bool, error) {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, ErrNotFound
	}

	for _, id := range p.Watchlist {
		if id == movieID {
			return true, nil
		}
	}
	return false, nil
}
