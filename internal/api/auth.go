package api

import (
	"context"
	"net/http"
)

// User is the authenticated account record.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse carries the token and user returned by login and register.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/login", payload, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	payload := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/register", payload, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// CurrentUser fetches the account behind the persisted token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var payload struct {
		User User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/user", &payload); err != nil {
		return User{}, err
	}
	return payload.User, nil
}
