package domain

// Account is a locally registered user. The email is the unique key,
// compared case-sensitively exactly as entered. The password field holds
// a bcrypt hash, never the plaintext.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionRecord is the persisted reference to the logged-in account.
// It deliberately carries no password; legacy records that still do are
// normalized on load (see account.Service.LoadSession).
type SessionRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
