package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

const apiURL = "https://api.spotify.com/v1"

// session is the state shared by an authenticated client and the builders it hands out.
//
// mu is held for the whole request pipeline, so requests through one client run one at a time in issue
// order and the token is never replaced under a running request.
type session struct {
	mu          sync.Mutex
	token       *Token
	oauth       *oauthClient
	http        *http.Client
	autoRefresh bool
	apiURL      string
	log         *log.Logger
	now         func() time.Time
}

// payload is a request body: either a value sent as JSON or raw bytes with an endpoint specific content type.
type payload struct {
	json        any
	file        []byte
	contentType string
}

func jsonBody(v any) *payload {
	return &payload{json: v}
}

func fileBody(data []byte, contentType string) *payload {
	return &payload{file: data, contentType: contentType}
}

// stamp converts an adapter token, stamping issue and expiry times from the session clock.
func (s *session) stamp(tok *oauth2.Token, requested []string) *Token {
	now := s.now()

	lifetime := defaultTokenLifetime
	switch {
	case tok.ExpiresIn > 0:
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	case !tok.Expiry.IsZero():
		lifetime = max(time.Until(tok.Expiry).Round(time.Second), 0)
	}

	scopes := requested
	if granted, ok := tok.Extra("scope").(string); ok && granted != "" {
		scopes = strings.Fields(granted)
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &Token{
		AccessToken:  tok.AccessToken,
		TokenType:    tokenType,
		RefreshToken: tok.RefreshToken,
		IssuedAt:     now,
		ExpiresAt:    now.Add(lifetime),
		Scopes:       scopes,
	}
}

// refresh replaces the token through the refresh grant. Callers hold mu.
func (s *session) refresh(ctx context.Context, scopes []Scope) error {
	if s.token == nil || s.token.RefreshToken == "" {
		return ErrRefreshUnavailable
	}

	s.log.Debug("refreshing access token")
	tok, err := s.oauth.exchangeRefresh(ctx, s.http, s.token.RefreshToken, scopes)
	if err != nil {
		s.log.Warn("token refresh failed", "err", err)
		return err
	}

	s.token = s.stamp(tok, s.token.Scopes)
	s.log.Info("refreshed access token", "expires_at", s.token.ExpiresAt.Format(time.RFC3339))
	return nil
}

// ensureFresh checks the stored expiry and refreshes once when the policy allows. Callers hold mu.
func (s *session) ensureFresh(ctx context.Context) error {
	if !s.token.IsExpired(s.now()) {
		return nil
	}
	if !s.autoRefresh {
		return ErrExpiredToken
	}
	return s.refresh(ctx, nil)
}

func (s *session) newRequest(ctx context.Context, method, path string, query url.Values, body *payload) (*http.Request, error) {
	u := s.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		if body.file != nil {
			reader = bytes.NewReader(body.file)
			contentType = body.contentType
		} else {
			data, err := json.Marshal(body.json)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request body: %w", err)
			}
			reader = bytes.NewReader(data)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	} else {
		// PUT /me/audiobooks answers with an HTML error page when a bodiless request lacks Content-Length.
		// With a zero length the transport writes "Content-Length: 0" for POST, PUT and PATCH only; a bodiless
		// GET or DELETE goes out without the header.
		req.ContentLength = 0
	}

	return req, nil
}

// request runs the pipeline: freshness check, request build, dispatch, decode and error lift.
func request[T any](ctx context.Context, s *session, method, path string, query url.Values, body *payload) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(ctx); err != nil {
		return zero, err
	}

	req, err := s.newRequest(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	s.log.Debug("request", "method", method, "path", path)
	resp, err := s.http.Do(req)
	if err != nil {
		return zero, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, transportError(err)
	}
	s.log.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, decodeError(resp.StatusCode, data)
	}
	return decode[T](resp.StatusCode, data)
}

// decode unmarshals a success body. An empty body, as sent with 204, yields the zero value of T.
func decode[T any](status int, data []byte) (T, error) {
	var out T
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &MalformedResponseError{Status: status, Body: data, Err: err}
	}
	return out, nil
}

func decodeError(status int, data []byte) error {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return &MalformedResponseError{Status: status, Body: data, Err: err}
	}
	if envelope.Error == nil {
		return &MalformedResponseError{Status: status, Body: data, Err: errors.New("missing error object")}
	}
	if envelope.Error.Status == 0 {
		envelope.Error.Status = status
	}
	return envelope.Error
}

func get[T any](ctx context.Context, s *session, path string, query url.Values) (T, error) {
	return request[T](ctx, s, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, s *session, path string, body *payload) (T, error) {
	return request[T](ctx, s, http.MethodPost, path, nil, body)
}

func put[T any](ctx context.Context, s *session, path string, body *payload) (T, error) {
	return request[T](ctx, s, http.MethodPut, path, nil, body)
}

func del[T any](ctx context.Context, s *session, path string, body *payload) (T, error) {
	return request[T](ctx, s, http.MethodDelete, path, nil, body)
}
