package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/transport"
)

const (
	serviceName         = "identity"
	defaultRetryWaitMax = time.Second * 5
)

// Client talks to the identity provider REST API and to the federated
// provider's OAuth endpoints.
type Client struct {
	client    *http.Client
	baseURL   string
	tokenURL  string
	apiKey    string
	federated config.FederatedConfig
}

func NewClient(cfg config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Identity.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Identity.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	// Only transport failures are retried, provider answers are final.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:    retryClient.StandardClient(),
		baseURL:   cfg.Identity.BaseURL,
		tokenURL:  cfg.Identity.TokenURL,
		apiKey:    cfg.Identity.APIKey,
		federated: cfg.Federated,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type idpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
}

type AccountResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type RefreshResponse struct {
	UserID       string `json:"user_id"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	IDToken     string `json:"id_token"`
}

// SignInWithPassword signs in an existing account. The password is sent as given.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (entity.Identity, error) {
	var resp AccountResponse

	err := c.postJSON(ctx, "accounts:signInWithPassword", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return entity.Identity{}, err
	}

	return resp.identity(entity.ProviderPassword), nil
}

// SignUp creates an account and signs it in.
func (c *Client) SignUp(ctx context.Context, email, password string) (entity.Identity, error) {
	var resp AccountResponse

	err := c.postJSON(ctx, "accounts:signUp", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return entity.Identity{}, err
	}

	return resp.identity(entity.ProviderPassword), nil
}

// FederatedAuthURL is where the browser is sent to authenticate with the federated provider.
func (c *Client) FederatedAuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.federated.ClientID)
	q.Set("redirect_uri", c.federated.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", c.federated.Scope)
	q.Set("state", state)
	q.Set("prompt", "select_account")

	return c.federated.AuthURL + "?" + q.Encode()
}

// SignInWithFederatedCode exchanges an authorization code and signs in with the resulting ID token.
func (c *Client) SignInWithFederatedCode(ctx context.Context, code string) (entity.Identity, error) {
	tokens, err := c.ExchangeCode(ctx, code)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("exchange code: %w", err)
	}

	postBody := url.Values{}
	postBody.Set("id_token", tokens.IDToken)
	postBody.Set("providerId", c.federated.ProviderID)

	var resp AccountResponse

	err = c.postJSON(ctx, "accounts:signInWithIdp", idpRequest{
		PostBody:            postBody.Encode(),
		RequestURI:          c.federated.RedirectURI,
		ReturnSecureToken:   true,
		ReturnIdpCredential: true,
	}, &resp)
	if err != nil {
		return entity.Identity{}, err
	}

	return resp.identity(entity.ProviderFederated), nil
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", c.federated.ClientID)
	data.Set("client_secret", c.federated.ClientSecret)
	data.Set("redirect_uri", c.federated.RedirectURI)

	var resp TokenResponse

	err := c.postForm(ctx, c.federated.TokenURL, data, &resp)
	if err != nil {
		return TokenResponse{}, err
	}

	if resp.IDToken == "" {
		return TokenResponse{}, &entity.RemoteError{Service: serviceName, Message: "MISSING_ID_TOKEN"}
	}

	return resp, nil
}

// Refresh trades a refresh token for a fresh ID token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (entity.Identity, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	var resp RefreshResponse

	err := c.postForm(ctx, c.withKey(c.tokenURL), data, &resp)
	if err != nil {
		return entity.Identity{}, err
	}

	return entity.Identity{
		UID:          resp.UserID,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt(resp.ExpiresIn),
	}, nil
}

func (c *Client) postJSON(ctx context.Context, method string, body, dest any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.withKey(c.baseURL+"/"+method), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

func (c *Client) postForm(ctx context.Context, endpoint string, data url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(data.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return ParseError(resp.StatusCode, body)
	}

	err = json.Unmarshal(body, dest)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) withKey(endpoint string) string {
	if c.apiKey == "" {
		return endpoint
	}

	return endpoint + "?key=" + url.QueryEscape(c.apiKey)
}

// ParseError maps an error body of either the identity REST API
// ({"error":{"message":...}}) or an OAuth endpoint ({"error":"...","error_description":...}).
func ParseError(statusCode int, body []byte) error {
	remote := &entity.RemoteError{
		Service: serviceName,
		Status:  strconv.Itoa(statusCode),
		Message: http.StatusText(statusCode),
	}

	var envelope struct {
		Error            json.RawMessage `json:"error"`
		ErrorDescription string          `json:"error_description"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return remote
	}

	var apiErr struct {
		Message string `json:"message"`
	}

	var oauthErr string

	switch {
	case json.Unmarshal(envelope.Error, &apiErr) == nil && apiErr.Message != "":
		remote.Message = apiErr.Message
	case json.Unmarshal(envelope.Error, &oauthErr) == nil && oauthErr != "":
		remote.Message = oauthErr
		if envelope.ErrorDescription != "" {
			remote.Message = envelope.ErrorDescription
		}
	}

	return remote
}

func (r AccountResponse) identity(provider string) entity.Identity {
	return entity.Identity{
		UID:          r.LocalID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		Provider:     provider,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    expiresAt(r.ExpiresIn),
	}
}

func expiresAt(expiresIn string) time.Time {
	seconds, err := strconv.Atoi(expiresIn)
	if err != nil || seconds <= 0 {
		return time.Time{}
	}

	return time.Now().Add(time.Duration(seconds) * time.Second)
}
