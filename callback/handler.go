package callback

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrAlreadyHandled is returned to a second request on the redirect path.
var ErrAlreadyHandled = errors.New("callback already processed")

// Result is what the accounts service sent to the redirect URI.
type Result struct {
	Code  string
	State string
	Err   error
}

// AuthorizationError is the error the accounts service reports on the redirect, e.g. "access_denied".
type AuthorizationError struct {
	Code        string
	Description string
}

func (e *AuthorizationError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("authorization failed: %s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("authorization failed: %s", e.Code)
}

// Handler handles the redirect of one authorization attempt.
type Handler struct {
	path       string
	resultChan chan Result
	once       sync.Once
	mu         sync.Mutex
	hit        bool
}

// NewHandler creates a handler serving path, the path component of the redirect URI.
func NewHandler(path string) *Handler {
	if path == "" {
		path = "/"
	}
	return &Handler{path: path, resultChan: make(chan Result, 1)}
}

// Path returns the path the handler serves.
func (h *Handler) Path() string {
	return h.path
}

// ServeHTTP records the callback. Only the first request is processed.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.hit {
		h.mu.Unlock()
		http.Error(w, ErrAlreadyHandled.Error(), http.StatusBadRequest)
		return
	}
	h.hit = true
	h.mu.Unlock()

	q := r.URL.Query()
	res := Result{Code: q.Get("code"), State: q.Get("state")}

	switch {
	case q.Get("error") != "":
		res.Err = &AuthorizationError{Code: q.Get("error"), Description: q.Get("error_description")}
	case res.Code == "":
		res.Err = &AuthorizationError{Code: "missing_code"}
	}
	h.send(res)

	if res.Err != nil {
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, successPage)
}

func (h *Handler) send(res Result) {
	h.once.Do(func() {
		h.resultChan <- res
		close(h.resultChan)
	})
}

// Result returns the channel the callback is delivered on.
//
// Channel will receive exactly one result and then be closed.
func (h *Handler) Result() <-chan Result {
	return h.resultChan
}

const successPage = `<!DOCTYPE html>
<html>
<head>
    <title>Authorization Successful</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Authorization Successful</h1>
        <p>You can close this window.</p>
    </div>
</body>
</html>
`
