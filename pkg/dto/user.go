package dto

// UserCreate represents the data needed to register a new user.
type UserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
