package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is an HTTP double for third-party APIs such as Resend. It records
// every JSON request body per route and answers with canned responses.
type ApiMock struct {
	mu       sync.Mutex
	server   *httptest.Server
	received map[string][]map[string]any
	canned   map[string]map[int]cannedResponse
	fallback map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   any
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		received: map[string][]map[string]any{},
		canned:   map[string]map[int]cannedResponse{},
		fallback: map[string]cannedResponse{},
	}
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Start launches the underlying server. Call it once before GetUrl.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	key := routeKey(r.Method, r.URL.Path)

	a.mu.Lock()
	index := len(a.received[key])
	a.received[key] = append(a.received[key], body)
	resp, ok := a.canned[key][index]
	if !ok {
		resp, ok = a.fallback[key]
	}
	a.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusOK, body: map[string]any{}}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse configures the answer for the index-th call of a route.
// An index of -1 sets the answer used when no indexed one matches.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := routeKey(method, path)
	resp := cannedResponse{status: status, body: response}
	if index < 0 {
		a.fallback[key] = resp
		return
	}
	if a.canned[key] == nil {
		a.canned[key] = map[int]cannedResponse{}
	}
	a.canned[key][index] = resp
}

// ClearResponses forgets recorded requests and canned responses of a route.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := routeKey(method, path)
	delete(a.received, key)
	delete(a.canned, key)
	delete(a.fallback, key)
}

// GetRequestBody returns the decoded body of the index-th call, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	calls := a.received[routeKey(method, path)]
	if index < 0 || index >= len(calls) {
		return nil
	}
	return calls[index]
}

// RequestCount reports how many calls a route received.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.received[routeKey(method, path)])
}
