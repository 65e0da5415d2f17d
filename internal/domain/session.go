package domain

// Session is the client's record of the authenticated identity. The zero
// value means logged out.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

// IsAuthenticated reports whether a bearer token is present. Derived from
// the session on every check, never stored separately.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == "admin"
}

// IsEmpty reports whether this is the logged-out session.
func (s Session) IsEmpty() bool {
	return s == Session{}
}
