package service

import (
	"context"
	"errors"
	"testing"

	"streamflix-api/internal/models"
)

func seedMovie(t *testing.T, movies *fakeMovieStore, id, slug, title, description string) *models.MovieDoc {
	t.Helper()
	mv := &models.MovieDoc{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Description: description,
		Category:    models.CategoryDrama,
		ReleaseYear: 2008,
		Rating:      7.5,
	}
	if err := movies.Insert(context.Background(), mv); err != nil {
		t.Fatalf("seed movie: %v", err)
	}
	return mv
}

func TestMovieListSearchMatchesTitleOrDescription(t *testing.T) {
	ctx := context.Background()
	movies := newFakeMovieStore()
	svc := NewMovieService(movies, nil)

	seedMovie(t, movies, "m1", "big-buck-bunny", "Big Buck Bunny", "A giant rabbit")
	seedMovie(t, movies, "m2", "sintel", "Sintel", "A girl and her dragon buckle up")
	seedMovie(t, movies, "m3", "tears-of-steel", "Tears of Steel", "Robots in Amsterdam")

	got, err := svc.List(ctx, "", 0, "Buck", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(search=Buck) returned %d movies, want 2", len(got))
	}
	for _, mv := range got {
		if mv.ID == "m3" {
			t.Errorf("movie %q should not match search", mv.Title)
		}
	}
}

func TestMovieGetByIDOrSlug(t *testing.T) {
	ctx := context.Background()
	movies := newFakeMovieStore()
	svc := NewMovieService(movies, nil)

	seedMovie(t, movies, "m1", "big-buck-bunny", "Big Buck Bunny", "A giant rabbit")

	byID, err := svc.GetByKey(ctx, "m1")
	if err != nil {
		t.Fatalf("GetByKey(id): %v", err)
	}
	bySlug, err := svc.GetByKey(ctx, "big-buck-bunny")
	if err != nil {
		t.Fatalf("GetByKey(slug): %v", err)
	}
	if byID.ID != bySlug.ID {
		t.Errorf("id and slug lookups disagree: %q vs %q", byID.ID, bySlug.ID)
	}

	if _, err := svc.GetByKey(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByKey(missing) err = %v, want ErrNotFound", err)
	}
}

func TestMovieCreateSlugConflict(t *testing.T) {
	ctx := context.Background()
	movies := newFakeMovieStore()
	svc := NewMovieService(movies, nil)

	req := &models.MovieCreateRequest{
		Slug:        "big-buck-bunny",
		Title:       "Big Buck Bunny",
		Description: "A giant rabbit",
		Category:    models.CategoryAnimation,
		ReleaseYear: 2008,
		Rating:      7.5,
	}
	mv, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if mv.ID == "" || mv.CreatedAt == "" {
		t.Error("Create should assign id and timestamps")
	}
	if mv.Tags == nil || mv.Languages == nil || mv.I18n == nil {
		t.Error("nil collections should be normalized to empty")
	}

	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("duplicate Create err = %v, want ErrSlugTaken", err)
	}
}

func TestMovieUpdateBumpsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	movies := newFakeMovieStore()
	svc := NewMovieService(movies, nil)

	seedMovie(t, movies, "m1", "big-buck-bunny", "Big Buck Bunny", "A giant rabbit")

	rating := 9.1
	got, err := svc.Update(ctx, "m1", &models.MovieUpdateRequest{Rating: &rating})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Rating != 9.1 {
		t.Errorf("Rating = %v, want 9.1", got.Rating)
	}
	if got.UpdatedAt == "" {
		t.Error("UpdatedAt should always be refreshed")
	}
	if got.Title != "Big Buck Bunny" {
		t.Errorf("untouched Title changed: %q", got.Title)
	}

	if _, err := svc.Update(ctx, "missing", &models.MovieUpdateRequest{Rating: &rating}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) err = %v, want ErrNotFound", err)
	}
}

func TestMovieDelete(t *testing.T) {
	ctx := context.Background()
	movies := newFakeMovieStore()
	svc := NewMovieService(movies, nil)

	seedMovie(t, movies, "m1", "big-buck-bunny", "Big Buck Bunny", "A giant rabbit")

	if err := svc.Delete(ctx, "m1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "m1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}
