package domain

// User represents a registered platform user. Password holds the bcrypt hash,
// opaque to every caller.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
