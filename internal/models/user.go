package models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type UserDoc struct {
	ID           string   `json:"id" bson:"id"`
	Email        string   `json:"email" bson:"email"`
	PasswordHash string   `json:"-" bson:"password_hash"`
	Role         UserRole `json:"role" bson:"role"`
	Profiles     []string `json:"profiles" bson:"profiles"`
	CreatedAt    string   `json:"created_at" bson:"created_at"`
	UpdatedAt    string   `json:"updated_at" bson:"updated_at"`
}
