// Package client is the desktop's persistence client: a thin JSON/HTTP wrapper over the
// backend that maps every failure onto the models error sentinels.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// ограничение на тело ошибки, чтобы не читать мегабайты html от прокси
const maxErrorBody = 64 << 10

type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a client for baseURL. A nil httpClient gets a default one with a timeout.
func NewClient(httpClient *http.Client, baseURL string, log *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		log:        l,
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Register(ctx context.Context, username, password string) (int64, error) {
	var out dto.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/register", dto.CredentialsRequest{Username: username, Password: password}, &out)
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Login returns the bearer token; it does not store it, see SetToken.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", dto.CredentialsRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &models.APIError{Status: http.StatusOK, Message: "empty token in login response", Kind: models.ErrNetwork}
	}
	return out.Token, nil
}

func (c *Client) ValidateToken(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/validate-token", nil, nil)
}

func (c *Client) ListShortcuts(ctx context.Context) ([]models.Shortcut, error) {
	var out []dto.ShortcutResponse
	if err := c.do(ctx, http.MethodGet, "/shortcuts", nil, &out); err != nil {
		return nil, err
	}

	list := make([]models.Shortcut, len(out))
	for i, r := range out {
		list[i] = dto.ShortcutResponseToDomain(r)
	}
	return list, nil
}

// CreateShortcut returns the id assigned by the server.
func (c *Client) CreateShortcut(ctx context.Context, sc models.Shortcut) (int64, error) {
	var out dto.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/shortcuts", dto.ShortcutRequestFromDomain(sc), &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateShortcut(ctx context.Context, sc models.Shortcut) error {
	return c.do(ctx, http.MethodPut, shortcutPath(sc.ID), dto.ShortcutRequestFromDomain(sc), nil)
}

func (c *Client) DeleteShortcut(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, shortcutPath(id), nil, nil)
}

// Ping reports whether the backend and its storage are up.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil)
}

func shortcutPath(id int64) string {
	return "/shortcuts/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(httputils.HeaderAuthorization, "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %w", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Str("request_id", resp.Header.Get(httputils.HeaderRequestID)).
		Msg("backend call")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %w", models.ErrNetwork, err)
		}
		return nil
	}

	return decodeError(resp)
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var eb dto.ErrorResponse
	message := ""
	if err := json.Unmarshal(raw, &eb); err == nil {
		message = strings.TrimSpace(eb.Error)
	} else if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "<") {
		message = text
	}

	return &models.APIError{
		Status:  resp.StatusCode,
		Message: message,
		Kind:    kindForStatus(resp.StatusCode),
	}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return models.ErrInvalidData
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.ErrUnauthorized
	case http.StatusNotFound:
		return models.ErrUnfound
	case http.StatusConflict:
		return models.ErrConflict
	default:
		return models.ErrNetwork
	}
}

// IsAuth reports whether err should end the session.
func IsAuth(err error) bool {
	return errors.Is(err, models.ErrUnauthorized)
}
