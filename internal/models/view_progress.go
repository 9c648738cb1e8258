package models

// ViewProgressDoc guarda un único registro por par (profile, movie).
type ViewProgressDoc struct {
	ID              string `json:"id" bson:"id"`
	ProfileID       string `json:"profile_id" bson:"profile_id"`
	MovieID         string `json:"movie_id" bson:"movie_id"`
	ProgressSeconds int    `json:"progress_seconds" bson:"progress_seconds"`
	Completed       bool   `json:"completed" bson:"completed"`
	LastWatched     string `json:"last_watched" bson:"last_watched"`
}

type ViewProgressRequest struct {
	ProgressSeconds int  `json:"progress_seconds" validate:"gte=0"`
	Completed       bool `json:"completed"`
}

type ContinueWatchingItem struct {
	Movie    MovieDoc        `json:"movie"`
	Progress ViewProgressDoc `json:"progress"`
}
