package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bankctl/internal/domain"
)

// Client talks JSON over HTTP to the banking backend.
//
// Every call is a single request/response exchange: no retries, no caching,
// and no timeout beyond what the injected http.Client enforces.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client rooted at base. A nil httpClient falls back to
// http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), http: httpClient}
}

func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	err := c.do(ctx, "", "/auth/register", "", nil, in, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, in domain.LoginInput) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	err := c.do(ctx, "", "/auth/login", "", nil, in, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context, token string, in domain.LogoutInput) error {
	return c.do(ctx, "", "/auth/logout", token, nil, in, nil)
}

func (c *Client) Me(ctx context.Context, token string) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, "", "/auth/me", token, nil, nil, &out)
	return out, err
}

func (c *Client) Accounts(ctx context.Context, token string) ([]domain.Account, error) {
	var out []domain.Account
	err := c.do(ctx, "", "/accounts", token, nil, nil, &out)
	return out, err
}

func (c *Client) Transactions(
	ctx context.Context,
	token string,
	filter domain.TransactionFilter,
) ([]domain.Transaction, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type.String())
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out []domain.Transaction
	err := c.do(ctx, "", "/transactions", token, query, nil, &out)
	return out, err
}

func (c *Client) Transfer(
	ctx context.Context,
	token string,
	in domain.TransferInput,
) (domain.Transaction, error) {
	var out domain.Transaction
	err := c.do(ctx, "", "/transactions/transfer", token, nil, in, &out)
	return out, err
}

func (c *Client) Exchange(
	ctx context.Context,
	token string,
	in domain.ExchangeInput,
) (domain.Transaction, error) {
	var out domain.Transaction
	err := c.do(ctx, "", "/transactions/exchange", token, nil, in, &out)
	return out, err
}

// do issues one request and normalises the outcome.
//
// An empty method defaults to POST when a body is present and GET otherwise.
// Empty query values are dropped. A success status with an empty payload is
// an empty success; a failure status decodes into *domain.APIError with the
// code synthesised from the status when the body supplies none. Transport
// failures come back as ordinary wrapped errors, never as *domain.APIError.
func (c *Client) do(
	ctx context.Context,
	method, path, token string,
	query url.Values,
	body, out any,
) error {
	target := c.base + path
	if params := compactQuery(query); params != "" {
		target += "?" + params
	}

	if method == "" {
		if body != nil {
			method = http.MethodPost
		} else {
			method = http.MethodGet
		}
	}

	var reader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bank api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("bank api %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode/100 != 2 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("bank api %s %s: decode response: %w", method, path, err)
	}
	return nil
}

// compactQuery encodes query with empty values elided, so optional
// parameters never reach the backend as blanks.
func compactQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	compact := url.Values{}
	for key, values := range query {
		for _, value := range values {
			if value != "" {
				compact.Add(key, value)
			}
		}
	}
	return compact.Encode()
}

// decodeError turns a failure response into *domain.APIError, keeping any
// field-level detail the backend provided.
func decodeError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = fmt.Sprintf("http_%d", status)
	}
	return apiErr
}

// Compile-time assertion that Client implements domain.BankAPI.
var _ domain.BankAPI = (*Client)(nil)
