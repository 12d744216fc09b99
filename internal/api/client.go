// Package api is the HTTP client for the remote scheduling service. It
// attaches bearer credentials from the session gate, maps failures onto the
// client error taxonomy, and performs the single refresh-and-retry pass when
// a protected read comes back 403.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/config"
	"github.com/BruksfildServices01/barber-client/internal/session"
)

type Client struct {
	base string
	http *http.Client
	gate *session.Gate
	log  zerolog.Logger
}

func New(cfg *config.Config, gate *session.Gate, log zerolog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(cfg.APIBaseURL, "/"),
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		gate: gate,
		log:  log,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	status, eb, err := c.send(ctx, method, path, payload, out, authed)
	if err != nil {
		return err
	}
	if status < http.StatusBadRequest {
		return nil
	}

	// Exactly one refresh, and only reads are re-issued afterwards. Writes
	// surface the expiry to the caller.
	if status == http.StatusForbidden && authed && method == http.MethodGet {
		if rerr := c.refreshToken(ctx); rerr != nil {
			return rerr
		}

		status, eb, err = c.send(ctx, method, path, payload, out, authed)
		if err != nil {
			return err
		}
		if status < http.StatusBadRequest {
			return nil
		}
	}

	return c.statusError(status, method, path, eb)
}

// send performs one request. A non-2xx status is returned unclassified,
// together with whatever error payload the server sent.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any, authed bool) (int, errorBody, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, errorBody{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed && c.gate.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+c.gate.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return 0, errorBody{}, clienterr.Wrap(clienterr.CodeNetworkFailure, method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return resp.StatusCode, eb, nil
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, errorBody{}, clienterr.Wrap(clienterr.CodeNetworkFailure, "decoding "+path, err)
		}
	}

	return resp.StatusCode, errorBody{}, nil
}

func (c *Client) statusError(status int, method, path string, eb errorBody) error {
	msg := eb.text()
	if msg == "" {
		msg = fmt.Sprintf("%s %s returned %d", method, path, status)
	}

	err := clienterr.FromStatus(status, msg)
	c.log.Error().Int("status", status).Str("method", method).Str("path", path).Str("code", string(err.Code)).Msg("request rejected")
	return err
}

// refreshToken posts the stored refresh token and stores the replacement.
func (c *Client) refreshToken(ctx context.Context) error {
	refresh := c.gate.RefreshToken()
	if refresh == "" {
		return clienterr.New(clienterr.CodeAuthExpired, "no refresh token held")
	}

	payload, _ := json.Marshal(map[string]string{"token": refresh})

	var out struct {
		NewToken string `json:"newToken"`
	}

	status, _, err := c.send(ctx, http.MethodPost, "/refresh", payload, &out, false)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest || out.NewToken == "" {
		return clienterr.New(clienterr.CodeAuthExpired, "token refresh rejected")
	}

	c.log.Info().Msg("bearer token refreshed")
	return c.gate.UpdateToken(ctx, out.NewToken)
}
