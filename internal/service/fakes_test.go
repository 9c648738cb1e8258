package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"streamflix-api/internal/models"
)

// Fakes en memoria de los stores, para probar los services sin Mongo.

type fakeUserStore struct {
	users map[string]*models.UserDoc
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.UserDoc{}}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.UserDoc, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) PushProfileID(_ context.Context, userID, profileID string) error {
	if u, ok := f.users[userID]; ok {
		u.Profiles = append(u.Profiles, profileID)
	}
	return nil
}

func (f *fakeUserStore) PullProfileID(_ context.Context, userID, profileID string) error {
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

type fakeProfileStore struct {
	profiles map[string]*models.ProfileDoc
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*models.ProfileDoc{}}
}

func (f *fakeProfileStore) FindOwned(_ context.Context, profileID, userID string) (*models.ProfileDoc, error) {
	p, ok := f.profiles[profileID]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	cp.Watchlist = append([]string{}, p.Watchlist...)
	cp.WatchHistory = append([]string{}, p.WatchHistory...)
	return &cp, nil
}

func (f *fakeProfileStore) FindByUser(_ context.Context, userID string) ([]models.ProfileDoc, error) {
	var out []models.ProfileDoc
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) Insert(_ context.Context, p *models.ProfileDoc) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfileStore) UpdateFields(_ context.Context, profileID string, fields map[string]any) error {
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

func (f *fakeProfileStore) Delete(_ context.Context, profileID string) error {
	delete(f.profiles, profileID)
	return nil
}

func (f *fakeProfileStore) AddToWatchlist(_ context.Context, profileID, movieID string) (bool, error) {
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

func (f *fakeProfileStore) RemoveFromWatchlist(_ context.Context, profileID, movieID string) error {
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

func (f *fakeProfileStore) AddToWatchHistory(_ context.Context, profileID, movieID string) (bool, error) {
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

type fakeMovieStore struct {
	movies map[string]*models.MovieDoc
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: map[string]*models.MovieDoc{}}
}

func (f *fakeMovieStore) FindByKey(_ context.Context, key string) (*models.MovieDoc, error) {
	for _, mv := range f.movies {
		if mv.ID == key || mv.Slug == key {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) FindByID(_ context.Context, id string) (*models.MovieDoc, error) {
	mv, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *mv
	return &cp, nil
}

func (f *fakeMovieStore) FindBySlug(_ context.Context, slug string) (*models.MovieDoc, error) {
	for _, mv := range f.movies {
		if mv.Slug == slug {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) FindByIDs(_ context.Context, ids []string) ([]models.MovieDoc, error) {
	var out []models.MovieDoc
	for _, id := range ids {
		if mv, ok := f.movies[id]; ok {
			out = append(out, *mv)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) Search(_ context.Context, category string, year int, search string, limit int) ([]models.MovieDoc, error) {
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

func (f *fakeMovieStore) Insert(_ context.Context, mv *models.MovieDoc) error {
	cp := *mv
	f.movies[mv.ID] = &cp
	return nil
}

func (f *fakeMovieStore) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	mv, ok := f.movies[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "slug":
			mv.Slug = v.(string)
		case "title":
			mv.Title = v.(string)
		case "description":
			mv.Description = v.(string)
		case "category":
			mv.Category = v.(models.MovieCategory)
		case "rating":
			mv.Rating = v.(float64)
		case "release_year":
			mv.ReleaseYear = v.(int)
		case "duration_minutes":
			mv.DurationMinutes = v.(int)
		case "updated_at":
			mv.UpdatedAt = v.(string)
		}
	}
	return nil
}

func (f *fakeMovieStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.movies[id]; !ok {
		return false, nil
	}
	delete(f.movies, id)
	return true, nil
}

type fakeProgressStore struct {
	records map[string]*models.ViewProgressDoc
	seq     map[string]int
	nextSeq int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{
		records: map[string]*models.ViewProgressDoc{},
		seq:     map[string]int{},
	}
}

func progressKey(profileID, movieID string) string {
	return profileID + "|" + movieID
}

func (f *fakeProgressStore) Upsert(_ context.Context, profileID, movieID string, seconds int, completed bool) error {
	key := progressKey(profileID, movieID)
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

func (f *fakeProgressStore) ListIncomplete(_ context.Context, profileID string, minSeconds, limit int) ([]models.ViewProgressDoc, error) {
	type entry struct {
		rec models.ViewProgressDoc
		seq int
	}
	var entries []entry
	for key, rec := range f.records {
		if rec.ProfileID != profileID || rec.Completed || rec.ProgressSeconds <= minSeconds {
			continue
		}
		entries = append(entries, entry{rec: *rec, seq: f.seq[key]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })

	var out []models.ViewProgressDoc
	for _, e := range entries {
		out = append(out, e.rec)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
