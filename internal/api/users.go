package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. Every field is required; validation
// happens client-side before the call.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileUpdate patches the caller's own profile. Empty fields are left
// unchanged; in particular an empty password keeps the current one.
type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

// UserUpsert is the admin create/update payload.
type UserUpsert struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

// UserPage is one page of the admin user listing. Total is the page count.
type UserPage struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

// Login exchanges credentials for a session payload.
func (c *Client) Login(ctx context.Context, creds Credentials) (domain.Session, error) {
	var out domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, creds, &out); err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

// Register creates an account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/api/users/register", nil, reg, nil)
}

func (c *Client) GetProfile(ctx context.Context, id string) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id+"/profile", nil, nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id+"/profile", nil, update, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// ListUsers pages through accounts. Admin-gated.
func (c *Client) ListUsers(ctx context.Context, page, limit int, search string) (UserPage, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"limit":  {strconv.Itoa(limit)},
		"search": {search},
	}

	var out UserPage
	if err := c.do(ctx, http.MethodGet, "/api/users/", query, nil, &out); err != nil {
		return UserPage{}, err
	}
	return out, nil
}

// CreateUser adds an account with an explicit role. Admin-gated.
func (c *Client) CreateUser(ctx context.Context, u UserUpsert) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, u, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// UpdateUser patches an account. Admin-gated.
func (c *Client) UpdateUser(ctx context.Context, id string, u UserUpsert) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id, nil, u, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// DeleteUser removes an account. Admin-gated.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil, nil)
}
