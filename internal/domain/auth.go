package domain

// AuthPayload is the identity a verified bearer token decodes to. It
// is handed to handlers explicitly, never stashed on a mutable
// request global.
type AuthPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}
