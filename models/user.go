package models

// User is the identity stored alongside the session token. The backend
// returns the display name under the field `nome`.
type User struct {
	// UserID is the backend-issued identifier. Every per-user storage key
	// (notes cache, trash, reminders) is namespaced by this value.
	UserID int64 `json:"userId"`

	// Name is the user's display name.
	Name string `json:"nome"`

	Email string `json:"email"`
}

// Session pairs the bearer token with the user it belongs to. The pair is
// persisted under a single storage key so a reader can never observe a token
// without its user or vice versa.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// HasToken reports whether the session carries a bearer token. A session
// without a token means the user is browsing in local-only (demo) mode.
func (s Session) HasToken() bool {
	return s.Token != ""
}
