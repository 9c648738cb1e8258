package service

import (
	"context"
	"fmt"
	"time"

	"streamflix-api/internal/cache"
	"streamflix-api/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50

	movieCacheTTL = 60 * time.Second
)

type MovieService struct {
	movies MovieStore
	cache  *cache.Cache
}

func NewMovieService(movies MovieStore, c *cache.Cache) *MovieService {
	return &MovieService{movies: movies, cache: c}
}

// List filtra por categoría, año y texto. Va a un cache Redis con TTL
// corto (sin invalidación; la staleness de 60s es aceptable aquí).
func (s *MovieService) List(ctx context.Context, category string, year int, search string, limit int) ([]models.MovieDoc, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key := fmt.Sprintf("movies:list:%s:%d:%s:%d", category, year, search, limit)
	var cached []models.MovieDoc
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	out, err := s.movies.Search(ctx, category, year, search, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.MovieDoc{}
	}

	_ = s.cache.SetJSON(ctx, key, out, movieCacheTTL)
	return out, nil
}

// GetByKey resuelve id o slug.
func (s *MovieService) GetByKey(ctx context.Context, key string) (*models.MovieDoc, error) {
	cacheKey := "movies:one:" + key
	var cached models.MovieDoc
	if ok, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return &cached, nil
	}

	mv, err := s.movies.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if mv == nil {
		return nil, ErrNotFound
	}

	_ = s.cache.SetJSON(ctx, cacheKey, mv, movieCacheTTL)
	return mv, nil
}

func (s *MovieService) Create(ctx context.Context, req *models.MovieCreateRequest) (*models.MovieDoc, error) {
	existing, err := s.movies.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	languages := req.Languages
	if languages == nil {
		languages = []string{}
	}
	i18n := req.I18n
	if i18n == nil {
		i18n = map[string]map[string]string{}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	mv := &models.MovieDoc{
		ID:              uuid.NewString(),
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		PosterURL:       req.PosterURL,
		BackdropURL:     req.BackdropURL,
		VideoURL:        req.VideoURL,
		ReleaseYear:     req.ReleaseYear,
		Rating:          req.Rating,
		DurationMinutes: req.DurationMinutes,
		Tags:            tags,
		Languages:       languages,
		I18n:            i18n,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.movies.Insert(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// Update aplica los campos presentes y siempre refresca updated_at.
func (s *MovieService) Update(ctx context.Context, id string, req *models.MovieUpdateRequest) (*models.MovieDoc, error) {
	mv, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mv == nil {
		return nil, ErrNotFound
	}

	fields := map[string]any{}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.PosterURL != nil {
		fields["poster_url"] = *req.PosterURL
	}
	if req.BackdropURL != nil {
		fields["backdrop_url"] = *req.BackdropURL
	}
	if req.VideoURL != nil {
		fields["video_url"] = *req.VideoURL
	}
	if req.ReleaseYear != nil {
		fields["release_year"] = *req.ReleaseYear
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.DurationMinutes != nil {
		fields["duration_minutes"] = *req.DurationMinutes
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Languages != nil {
		fields["languages"] = *req.Languages
	}
	if req.I18n != nil {
		fields["i18n"] = *req.I18n
	}
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.movies.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.movies.FindByID(ctx, id)
}

// Delete es un borrado duro; las referencias en watchlists y
// view_progress quedan colgando a propósito.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	found, err := s.movies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
