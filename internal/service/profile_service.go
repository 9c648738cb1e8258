package service

import (
	"context"
	"time"

	"streamflix-api/internal/models"

	"github.com/google/uuid"
)

type ProfileService struct {
	profiles ProfileStore
	users    UserStore
}

func NewProfileService(profiles ProfileStore, users UserStore) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

func (s *ProfileService) List(ctx context.Context, user *models.UserDoc) ([]models.ProfileDoc, error) {
	out, err := s.profiles.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ProfileDoc{}
	}
	return out, nil
}

// Create inserta el perfil y agrega su id a la lista del usuario.
func (s *ProfileService) Create(ctx context.Context, user *models.UserDoc, req *models.ProfileCreateRequest) (*models.ProfileDoc, error) {
	avatar := req.Avatar
	if avatar == "" {
		avatar = "default"
	}
	language := req.Language
	if language == "" {
		language = "en"
	}
	maturity := req.MaturityRating
	if maturity == "" {
		maturity = models.MaturityPG13
	}

	p := &models.ProfileDoc{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Name:           req.Name,
		Avatar:         avatar,
		Language:       language,
		MaturityRating: maturity,
		WatchHistory:   []string{},
		Watchlist:      []string{},
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.profiles.Insert(ctx, p); err != nil {
		return nil, err
	}
	if err := s.users.PushProfileID(ctx, user.ID, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Update aplica solo los campos presentes en el body.
func (s *ProfileService) Update(ctx context.Context, user *models.UserDoc, profileID string, req *models.ProfileUpdateRequest) (*models.ProfileDoc, error) {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Language != nil {
		fields["language"] = *req.Language
	}
	if req.MaturityRating != nil {
		fields["maturity_rating"] = *req.MaturityRating
	}
	if req.Watchlist != nil {
		fields["watchlist"] = *req.Watchlist
	}

	if len(fields) > 0 {
		if err := s.profiles.UpdateFields(ctx, profileID, fields); err != nil {
			return nil, err
		}
	}
	return s.profiles.FindOwned(ctx, profileID, user.ID)
}

// Delete borra el perfil y saca su id del usuario; los registros de
// view_progress del perfil quedan tal cual (sin cascada).
func (s *ProfileService) Delete(ctx context.Context, user *models.UserDoc, profileID string) error {
	p, err := s.profiles.FindOwned(ctx, profileID, user.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	if err := s.profiles.Delete(ctx, profileID); err != nil {
		return err
	}
	return s.users.PullProfileID(ctx, user.ID, profileID)
}
