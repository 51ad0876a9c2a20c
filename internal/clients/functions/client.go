package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/transport"
)

const (
	serviceName = "functions"

	fnAddUser    = "addUser"
	fnRemoveUser = "removeUser"
	fnModifyUser = "modifyUser"
)

// Client invokes the privileged account functions with the callable protocol:
// the payload travels as {"data": ...} and the answer is {"result": ...} or {"error": ...}.
type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.FunctionsConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

type callRequest struct {
	Data any `json:"data"`
}

type callResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *callError      `json:"error"`
}

type callError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type addUserData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type removeUserData struct {
	Email string `json:"email"`
}

type modifyUserData struct {
	Email    string `json:"email"`
	NewEmail string `json:"newEmail"`
}

// CreateUserAccount creates an identity account with an already hashed password.
func (c *Client) CreateUserAccount(ctx context.Context, idToken, email, hashedPassword string) (json.RawMessage, error) {
	return c.call(ctx, idToken, fnAddUser, addUserData{Email: email, Password: hashedPassword})
}

func (c *Client) DeleteUserAccount(ctx context.Context, idToken, email string) (json.RawMessage, error) {
	return c.call(ctx, idToken, fnRemoveUser, removeUserData{Email: email})
}

func (c *Client) RenameUserAccount(ctx context.Context, idToken, email, newEmail string) (json.RawMessage, error) {
	return c.call(ctx, idToken, fnModifyUser, modifyUserData{Email: email, NewEmail: newEmail})
}

func (c *Client) call(ctx context.Context, idToken, name string, data any) (json.RawMessage, error) {
	b, err := json.Marshal(callRequest{Data: data})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+name, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if idToken != "" {
		req.Header.Set("Authorization", "Bearer "+idToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var out callResponse

	decodeErr := json.Unmarshal(body, &out)

	if out.Error != nil {
		return nil, &entity.RemoteError{
			Service: serviceName + "." + name,
			Status:  out.Error.Status,
			Message: out.Error.Message,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &entity.RemoteError{
			Service: serviceName + "." + name,
			Status:  strconv.Itoa(resp.StatusCode),
			Message: http.StatusText(resp.StatusCode),
		}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return out.Result, nil
}
