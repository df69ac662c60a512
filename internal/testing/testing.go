// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// DefaultToken is the token endpoint response served until [FakeSpotify.RespondToken] replaces it.
const DefaultToken = `{"access_token":"access-1","token_type":"Bearer","expires_in":3600,` +
	`"refresh_token":"refresh-1","scope":"user-read-email user-read-private"}`

// Request is a request received by [FakeSpotify].
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Form parses the body of a form encoded request, such as a token exchange.
func (r Request) Form() url.Values {
	form, _ := url.ParseQuery(string(r.Body))
	return form
}

// Response is a canned response.
type Response struct {
	Status int
	Body   string
}

// FakeSpotify is a recording fake of both the accounts service and the Web API.
//
// Token requests go to /api/token, API requests to /v1/... Responses are looked up by "METHOD /path", the
// path without the /v1 prefix; unknown routes answer 200 with an empty JSON object.
type FakeSpotify struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	responses map[string][]Response
	token     []Response
}

// NewFakeSpotify starts a fake closed at the end of the test.
func NewFakeSpotify(t *testing.T) *FakeSpotify {
	t.Helper()
	f := &FakeSpotify{responses: make(map[string][]Response)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// AccountsURL is the base URL to pass as the accounts service.
func (f *FakeSpotify) AccountsURL() string { return f.URL }

// APIURL is the base URL to pass as the Web API.
func (f *FakeSpotify) APIURL() string { return f.URL + "/v1" }

// Respond queues a response for method and path. Queued responses are served in order; the last one
// is repeated.
func (f *FakeSpotify) Respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + path
	f.responses[key] = append(f.responses[key], Response{Status: status, Body: body})
}

// RespondToken queues a token endpoint response.
func (f *FakeSpotify) RespondToken(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = append(f.token, Response{Status: status, Body: body})
}

// Requests returns every request received so far.
func (f *FakeSpotify) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// TokenRequests returns the requests made to the token endpoint.
func (f *FakeSpotify) TokenRequests() []Request {
	return f.filter(func(r Request) bool { return r.Path == "/api/token" })
}

// APIRequests returns the requests made to the Web API, with the /v1 prefix stripped from their paths.
func (f *FakeSpotify) APIRequests() []Request {
	var out []Request
	for _, r := range f.filter(func(r Request) bool { return strings.HasPrefix(r.Path, "/v1/") }) {
		r.Path = strings.TrimPrefix(r.Path, "/v1")
		out = append(out, r)
	}
	return out
}

func (f *FakeSpotify) filter(keep func(Request) bool) []Request {
	var out []Request
	for _, r := range f.Requests() {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeSpotify) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})

	var res Response
	switch {
	case r.URL.Path == "/api/token":
		res = next(&f.token, Response{Status: http.StatusOK, Body: DefaultToken})
	default:
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/v1")
		queue := f.responses[key]
		res = next(&queue, Response{Status: http.StatusOK, Body: "{}"})
		f.responses[key] = queue
	}
	f.mu.Unlock()

	if res.Body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(res.Status)
	io.WriteString(w, res.Body)
}

func next(queue *[]Response, fallback Response) Response {
	switch len(*queue) {
	case 0:
		return fallback
	case 1:
		return (*queue)[0]
	default:
		res := (*queue)[0]
		*queue = (*queue)[1:]
		return res
	}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

// NewMockRoundTripper answers every request with r and e.
func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// CountingRoundTripper counts the requests passing through it.
type CountingRoundTripper struct {
	mu    sync.Mutex
	count int
	next  http.RoundTripper
}

// NewCountingRoundTripper wraps next, or the default transport when next is nil.
func NewCountingRoundTripper(next http.RoundTripper) *CountingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &CountingRoundTripper{next: next}
}

func (c *CountingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	return c.next.RoundTrip(r)
}

// Count returns the number of requests seen.
func (c *CountingRoundTripper) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
