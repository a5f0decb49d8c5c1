package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

// SignInAnonymous establishes a session for the given device and stores the
// returned token on the client. The username is only consulted on the very
// first sign-in from a device.
func (v *Client) SignInAnonymous(ctx context.Context, deviceID, username string) (models.Account, error) {
	var result struct {
		Token   string         `json:"token"`
		Account models.Account `json:"account"`
	}

	err := v.request(ctx, http.MethodPost, "/api/auth/anonymous", map[string]any{
		"device_id": deviceID,
		"username":  username,
	}, &result)
	if err != nil {
		return models.Account{}, err
	}

	v.token = result.Token

	return result.Account, nil
}

func (v *Client) GetMyAccount(ctx context.Context) (models.Account, error) {
	var account models.Account
	err := v.request(ctx, http.MethodGet, "/api/users/me", nil, &account)
	return account, err
}

// UpdateMyAccount upserts the mutable profile fields.
func (v *Client) UpdateMyAccount(ctx context.Context, bio string, headerURL *string) (models.Account, error) {
	var account models.Account
	err := v.request(ctx, http.MethodPut, "/api/users/me", map[string]any{
		"bio":        bio,
		"header_url": headerURL,
	}, &account)
	return account, err
}

func (v *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := v.request(ctx, http.MethodGet, "/api/users/", nil, &accounts)
	return accounts, err
}

func (v *Client) GetAccount(ctx context.Context, name string) (models.Account, error) {
	var account models.Account
	err := v.request(ctx, http.MethodGet, "/api/users/"+url.PathEscape(name), nil, &account)
	return account, err
}
