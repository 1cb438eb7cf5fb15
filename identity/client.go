package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"regexp"
	"time"
)

// Client wraps the external identity provider's REST API. The provider owns
// accounts, passwords and verification; this application only consumes its
// success and error outcomes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: os.Getenv("IDENTITY_URL"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Credential is the provider's view of a signed-in account.
type Credential struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	Token         string `json:"token"`
	EmailVerified bool   `json:"email_verified"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the address shape before any network call is attempted.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func (c *Client) SignIn(ctx context.Context, email string, password string) (*Credential, error) {
	credential := new(Credential)

	err := c.do(ctx, http.MethodPost, "/api/v1/sessions", map[string]string{
		"email":    email,
		"password": password,
	}, credential)
	if err != nil {
		return nil, err
	}

	return credential, nil
}

func (c *Client) SignUp(ctx context.Context, email string, password string) (*Credential, error) {
	credential := new(Credential)

	err := c.do(ctx, http.MethodPost, "/api/v1/users", map[string]string{
		"email":    email,
		"password": password,
	}, credential)
	if err != nil {
		return nil, err
	}

	// the provider mails the verification link on sign-up
	return credential, nil
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/sessions?token="+token, nil, nil)
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/password/reset", map[string]string{
		"email": email,
	}, nil)
}

// Reauthenticate re-checks the current password before sensitive changes.
func (c *Client) Reauthenticate(ctx context.Context, email string, password string) error {
	_, err := c.SignIn(ctx, email, password)

	return err
}

func (c *Client) UpdateEmail(ctx context.Context, token string, newEmail string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/users/email", map[string]string{
		"token": token,
		"email": newEmail,
	}, nil)
}

func (c *Client) UpdatePassword(ctx context.Context, token string, newPassword string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/users/password", map[string]string{
		"token":    token,
		"password": newPassword,
	}, nil)
}

func (c *Client) SendEmailVerification(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/verification", map[string]string{
		"token": token,
	}, nil)
}

// EmailExists asks the provider for the sign-in methods registered for the
// address.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var payload struct {
		Methods []string `json:"methods"`
	}

	err := c.do(ctx, http.MethodGet, "/api/v1/users/methods?email="+email, nil, &payload)
	if err != nil {
		return false, err
	}

	return len(payload.Methods) > 0, nil
}

func (c *Client) LinkTwitter(ctx context.Context, token string, oauthToken string) (string, error) {
	var payload struct {
		Username string `json:"username"`
	}

	err := c.do(ctx, http.MethodPost, "/api/v1/users/providers/twitter", map[string]string{
		"token":       token,
		"oauth_token": oauthToken,
	}, &payload)
	if err != nil {
		return "", err
	}

	return payload.Username, nil
}

func (c *Client) UnlinkTwitter(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/providers/twitter?token="+token, nil, nil)
}

type providerErrorEnvelope struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &ProviderError{Code: CodeNetworkFailed}
	}
	defer resp.Body.Close()

	payload, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var envelope providerErrorEnvelope
		if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error.Code != "" {
			return &ProviderError{Code: envelope.Error.Code}
		}

		return fmt.Errorf("identity: unexpected status code %d for %s", resp.StatusCode, path)
	}

	if out != nil {
		return json.Unmarshal(payload, out)
	}

	return nil
}
