package models

type MaturityRating string

const (
	MaturityG    MaturityRating = "G"
	MaturityPG   MaturityRating = "PG"
	MaturityPG13 MaturityRating = "PG-13"
	MaturityR    MaturityRating = "R"
	MaturityNC17 MaturityRating = "NC-17"
)

func (m MaturityRating) Valid() bool {
	switch m {
	case MaturityG, MaturityPG, MaturityPG13, MaturityR, MaturityNC17:
		return true
	}
	return false
}

type ProfileDoc struct {
	ID             string         `json:"id" bson:"id"`
	UserID         string         `json:"user_id" bson:"user_id"`
	Name           string         `json:"name" bson:"name"`
	Avatar         string         `json:"avatar" bson:"avatar"`
	Language       string         `json:"language" bson:"language"`
	MaturityRating MaturityRating `json:"maturity_rating" bson:"maturity_rating"`
	WatchHistory   []string       `json:"watch_history" bson:"watch_history"`
	Watchlist      []string       `json:"watchlist" bson:"watchlist"`
	CreatedAt      string         `json:"created_at" bson:"created_at"`
}

type ProfileCreateRequest struct {
	Name           string         `json:"name" validate:"required"`
	Avatar         string         `json:"avatar"`
	Language       string         `json:"language"`
	MaturityRating MaturityRating `json:"maturity_rating" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
}

type ProfileUpdateRequest struct {
	Name           *string         `json:"name"`
	Avatar         *string         `json:"avatar"`
	Language       *string         `json:"language"`
	MaturityRating *MaturityRating `json:"maturity_rating" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
	Watchlist      *[]string       `json:"watchlist"`
}
