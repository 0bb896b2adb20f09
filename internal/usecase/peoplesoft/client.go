package peoplesoft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/STEVENBOBER/LegacyBridge/config"
	"github.com/STEVENBOBER/LegacyBridge/internal/entity"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

const _defaultRequestTimeout = 10 * time.Second

// Client talks JSON over HTTP to a live PeopleSoft bridge endpoint. It is
// the second variant of the Feature contract, selected at startup with
// peoplesoft.mode: live. Every call is bounded by the configured request
// timeout and honors context cancellation; retries are a caller concern.
//
// Tokens issued by the live backend are wrapped with the bridge's structural
// marker so the request gate and all caller-facing behavior stay identical
// across variants; the marker is stripped again before the token is
// forwarded upstream.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Interface
}

var _ Feature = (*Client)(nil)

// NewClient -.
func NewClient(cfg config.PeopleSoft, log logger.Interface) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = _defaultRequestTimeout
	}

	log.Info("peoplesoft - live adapter initialized with baseUrl=" + cfg.BaseURL)

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Ping -.
func (c *Client) Ping(ctx context.Context) (ConnectivityResult, error) {
	c.log.Debug("peoplesoft - client - Ping called")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", http.NoBody)
	if err != nil {
		return ConnectivityResult{}, UpstreamError{Op: "ping", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ConnectivityResult{}, UnreachableError{Endpoint: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ConnectivityResult{}, UnreachableError{
			Endpoint: c.baseURL,
			Err:      fmt.Errorf("unexpected status %d from ping", resp.StatusCode),
		}
	}

	return ConnectivityResult{
		Message:       "PeopleSoft API reachable",
		PeopleSoftURL: c.baseURL,
		TimeStamp:     time.Now().UTC(),
	}, nil
}

// Login -.
func (c *Client) Login(ctx context.Context, username, password string) (SessionToken, error) {
	c.log.Info("peoplesoft - client - Login called for username=" + username)

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return SessionToken{}, UpstreamError{Op: "login", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth", bytes.NewReader(payload))
	if err != nil {
		return SessionToken{}, UpstreamError{Op: "login", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		loginAttempts.WithLabelValues("upstream_error").Inc()

		return SessionToken{}, UpstreamError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn("peoplesoft - client - Login rejected for username=" + username)
		loginAttempts.WithLabelValues("invalid_credentials").Inc()

		return SessionToken{}, InvalidCredentialsError{Username: username}
	default:
		loginAttempts.WithLabelValues("upstream_error").Inc()

		return SessionToken{}, UpstreamError{Op: "login", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var body struct {
		Token     string    `json:"token"`
		ExpiresIn int       `json:"expiresIn"`
		IssuedAt  time.Time `json:"issuedAt"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		loginAttempts.WithLabelValues("upstream_error").Inc()

		return SessionToken{}, UpstreamError{Op: "login", Err: err}
	}

	issuedAt := body.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	expiresIn := body.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = DefaultSessionTimeout
	}

	loginAttempts.WithLabelValues("success").Inc()

	return SessionToken{
		Token:     TokenPrefix + body.Token,
		ExpiresIn: expiresIn,
		IssuedAt:  issuedAt,
	}, nil
}

// GetEmployeeByID -.
func (c *Client) GetEmployeeByID(ctx context.Context, id, token string) (entity.Employee, error) {
	c.log.Debug("peoplesoft - client - GetEmployeeByID called for id=" + id)

	lookupURL := c.baseURL + "/employees/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, http.NoBody)
	if err != nil {
		return entity.Employee{}, UpstreamError{Op: "getEmployee", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+strings.TrimPrefix(token, TokenPrefix))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Employee{}, UpstreamError{Op: "getEmployee", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.Employee{}, NotFoundError{EmployeeID: id}
	default:
		return entity.Employee{}, UpstreamError{Op: "getEmployee", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var employee entity.Employee
	if err := json.NewDecoder(resp.Body).Decode(&employee); err != nil {
		return entity.Employee{}, UpstreamError{Op: "getEmployee", Err: err}
	}

	if employee.EmployeeID != id {
		return entity.Employee{}, UpstreamError{Op: "getEmployee", Err: ErrIdentifierMismatch}
	}

	if employee.SourceSystem == "" {
		employee.SourceSystem = entity.SourceSystem
	}

	employeeLookups.WithLabelValues("live").Inc()

	return employee, nil
}
