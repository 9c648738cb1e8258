package models

type MovieCategory string

const (
	CategoryAction      MovieCategory = "action"
	CategoryComedy      MovieCategory = "comedy"
	CategoryDrama       MovieCategory = "drama"
	CategoryHorror      MovieCategory = "horror"
	CategorySciFi       MovieCategory = "sci-fi"
	CategoryRomance     MovieCategory = "romance"
	CategoryThriller    MovieCategory = "thriller"
	CategoryDocumentary MovieCategory = "documentary"
	CategoryAnimation   MovieCategory = "animation"
	CategoryFamily      MovieCategory = "family"
)

func (c MovieCategory) Valid() bool {
	switch c {
	case CategoryAction, CategoryComedy, CategoryDrama, CategoryHorror,
		CategorySciFi, CategoryRomance, CategoryThriller,
		CategoryDocumentary, CategoryAnimation, CategoryFamily:
		return true
	}
	return false
}

type MovieDoc struct {
	ID              string                       `json:"id" bson:"id"`
	Slug            string                       `json:"slug" bson:"slug"`
	Title           string                       `json:"title" bson:"title"`
	Description     string                       `json:"description" bson:"description"`
	Category        MovieCategory                `json:"category" bson:"category"`
	PosterURL       string                       `json:"poster_url" bson:"poster_url"`
	BackdropURL     string                       `json:"backdrop_url" bson:"backdrop_url"`
	VideoURL        string                       `json:"video_url" bson:"video_url"`
	ReleaseYear     int                          `json:"release_year" bson:"release_year"`
	Rating          float64                      `json:"rating" bson:"rating"`
	DurationMinutes int                          `json:"duration_minutes" bson:"duration_minutes"`
	Tags            []string                     `json:"tags" bson:"tags"`
	Languages       []string                     `json:"languages" bson:"languages"`
	I18n            map[string]map[string]string `json:"i18n" bson:"i18n"`
	CreatedAt       string                       `json:"created_at" bson:"created_at"`
	UpdatedAt       string                       `json:"updated_at" bson:"updated_at"`
}

type MovieCreateRequest struct {
	Slug            string                       `json:"slug" validate:"required"`
	Title           string                       `json:"title" validate:"required"`
	Description     string                       `json:"description" validate:"required"`
	Category        MovieCategory                `json:"category" validate:"required,oneof=action comedy drama horror sci-fi romance thriller documentary animation family"`
	PosterURL       string                       `json:"poster_url"`
	BackdropURL     string                       `json:"backdrop_url"`
	VideoURL        string                       `json:"video_url"`
	ReleaseYear     int                          `json:"release_year" validate:"required"`
	Rating          float64                      `json:"rating" validate:"gte=0,lte=10"`
	DurationMinutes int                          `json:"duration_minutes" validate:"gte=0"`
	Tags            []string                     `json:"tags"`
	Languages       []string                     `json:"languages"`
	I18n            map[string]map[string]string `json:"i18n"`
}

type MovieUpdateRequest struct {
	Slug            *string                       `json:"slug"`
	Title           *string                       `json:"title"`
	Description     *string                       `json:"description"`
	Category        *MovieCategory                `json:"category" validate:"omitempty,oneof=action comedy drama horror sci-fi romance thriller documentary animation family"`
	PosterURL       *string                       `json:"poster_url"`
	BackdropURL     *string                       `json:"backdrop_url"`
	VideoURL        *string                       `json:"video_url"`
	ReleaseYear     *int                          `json:"release_year"`
	Rating          *float64                      `json:"rating" validate:"omitempty,gte=0,lte=10"`
	DurationMinutes *int                          `json:"duration_minutes" validate:"omitempty,gte=0"`
	Tags            *[]string                     `json:"tags"`
	Languages       *[]string                     `json:"languages"`
	I18n            *map[string]map[string]string `json:"i18n"`
}
