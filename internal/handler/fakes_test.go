package handler

import (
	"context"
	"fmt"
	"strings"

	"streamflix-api/internal/models"
)

// Stores en memoria para levantar el router completo en tests.

type memUsers struct {
	users map[string]*models.UserDoc
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*models.UserDoc{}} }

func (f *memUsers) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memUsers) FindByID(_ context.Context, id string) (*models.UserDoc, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *memUsers) Insert(_ context.Context, u *models.UserDoc) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *memUsers) PushProfileID(_ context.Context, userID, profileID string) error {
	if u, ok := f.users[userID]; ok {
		u.Profiles = append(u.Profiles, profileID)
	}
	return nil
}

func (f *memUsers) PullProfileID(_ context.Context, userID, profileID string) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	out := u.Profiles[:0]
	for _, id := range u.Profiles {
		if id != profileID {
			out = append(out, id)
		}
	}
	u.Profiles = out
	return nil
}

func (f *memUsers) promoteToAdmin(email string) {
	for _, u := range f.users {
		if u.Email == email {
			u.Role = models.RoleAdmin
		}
	}
}

type memProfiles struct {
	profiles map[string]*models.ProfileDoc
}

func newMemProfiles() *memProfiles { return &memProfiles{profiles: map[string]*models.ProfileDoc{}} }

func (f *memProfiles) FindOwned(_ context.Context, profileID, userID string) (*models.ProfileDoc, error) {
	p, ok := f.profiles[profileID]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	cp.Watchlist = append([]string{}, p.Watchlist...)
	cp.WatchHistory = append([]string{}, p.WatchHistory...)
	return &cp, nil
}

func (f *memProfiles) FindByUser(_ context.Context, userID string) ([]models.ProfileDoc, error) {
	var out []models.ProfileDoc
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *memProfiles) Insert(_ context.Context, p *models.ProfileDoc) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *memProfiles) UpdateFields(_ context.Context, profileID string, fields map[string]any) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "avatar":
			p.Avatar = v.(string)
		case "language":
			p.Language = v.(string)
		case "maturity_rating":
			p.MaturityRating = v.(models.MaturityRating)
		case "watchlist":
			p.Watchlist = v.([]string)
		}
	}
	return nil
}

func (f *memProfiles) Delete(_ context.Context, profileID string) error {
	delete(f.profiles, profileID)
	return nil
}

func (f *memProfiles) AddToWatchlist(_ context.Context, profileID, movieID string) (bool, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return false, nil
	}
	for _, id := range p.Watchlist {
		if id == movieID {
			return false, nil
		}
	}
	p.Watchlist = append(p.Watchlist, movieID)
	return true, nil
}

func (f *memProfiles) RemoveFromWatchlist(_ context.Context, profileID, movieID string) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil
	}
	out := p.Watchlist[:0]
	for _, id := range p.Watchlist {
		if id != movieID {
			out = append(out, id)
		}
	}
	p.Watchlist = out
	return nil
}

func (f *memProfiles) AddToWatchHistory(_ context.Context, profileID, movieID string) (bool, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return false, nil
	}
	for _, id := range p.WatchHistory {
		if id == movieID {
			return false, nil
		}
	}
	p.WatchHistory = append(p.WatchHistory, movieID)
	return true, nil
}

type memMovies struct {
	movies map[string]*models.MovieDoc
}

func newMemMovies() *memMovies { return &memMovies{movies: map[string]*models.MovieDoc{}} }

func (f *memMovies) FindByKey(_ context.Context, key string) (*models.MovieDoc, error) {
	for _, mv := range f.movies {
		if mv.ID == key || mv.Slug == key {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memMovies) FindByID(_ context.Context, id string) (*models.MovieDoc, error) {
	mv, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *mv
	return &cp, nil
}

func (f *memMovies) FindBySlug(_ context.Context, slug string) (*models.MovieDoc, error) {
	for _, mv := range f.movies {
		if mv.Slug == slug {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memMovies) FindByIDs(_ context.Context, ids []string) ([]models.MovieDoc, error) {
	var out []models.MovieDoc
	for _, id := range ids {
		if mv, ok := f.movies[id]; ok {
			out = append(out, *mv)
		}
	}
	return out, nil
}

func (f *memMovies) Search(_ context.Context, category string, year int, search string, limit int) ([]models.MovieDoc, error) {
	var out []models.MovieDoc
	for _, mv := range f.movies {
		if category != "" && string(mv.Category) != category {
			continue
		}
		if year > 0 && mv.ReleaseYear != year {
			continue
		}
		if search != "" {
			s := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(mv.Title), s) &&
				!strings.Contains(strings.ToLower(mv.Description), s) {
				continue
			}
		}
		out = append(out, *mv)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *memMovies) Insert(_ context.Context, mv *models.MovieDoc) error {
	cp := *mv
	f.movies[mv.ID] = &cp
	return nil
}

func (f *memMovies) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	mv, ok := f.movies[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			mv.Title = v.(string)
		case "rating":
			mv.Rating = v.(float64)
		case "updated_at":
			mv.UpdatedAt = v.(string)
		}
	}
	return nil
}

func (f *memMovies) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.movies[id]; !ok {
		return false, nil
	}
	delete(f.movies, id)
	return true, nil
}

type memProgress struct {
	records map[string]*models.ViewProgressDoc
	seq     map[string]int
	nextSeq int
}

func newMemProgress() *memProgress {
	return &memProgress{records: map[string]*models.ViewProgressDoc{}, seq: map[string]int{}}
}

func (f *memProgress) Upsert(_ context.Context, profileID, movieID string, seconds int, completed bool) error {
	key := profileID + "|" + movieID
	rec, ok := f.records[key]
	if !ok {
		rec = &models.ViewProgressDoc{
			ID:        fmt.Sprintf("vp-%d", f.nextSeq),
			ProfileID: profileID,
			MovieID:   movieID,
		}
		f.records[key] = rec
	}
	rec.ProgressSeconds = seconds
	rec.Completed = completed
	f.nextSeq++
	f.seq[key] = f.nextSeq
	return nil
}

func (f *memProgress) ListIncomplete(_ context.Context, profileID string, minSeconds, limit int) ([]models.ViewProgressDoc, error) {
	var out []models.ViewProgressDoc
	for _, rec := range f.records {
		if rec.ProfileID != profileID || rec.Completed || rec.ProgressSeconds <= minSeconds {
			continue
		}
		out = append(out, *rec)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
