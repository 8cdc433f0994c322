package account

// Account is a username/password pair identifying a user of the
// application. Accounts are created once at signup and never mutated or
// deleted afterwards.
//
// The password is stored in plain text. This mirrors the persisted layout
// the application has always used; changing it would break every existing
// installation, so it is kept and documented as an open risk.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
