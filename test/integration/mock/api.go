package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// recordedRequest is one call received by the mock.
type recordedRequest struct {
	body    map[string]any
	headers map[string]string
}

// cannedResponse is what the mock answers with.
type cannedResponse struct {
	status int
	body   any
}

// route accumulates the calls and scripted answers of one method and path.
type route struct {
	requests []recordedRequest
	answers  map[int]cannedResponse // by call index
	fallback *cannedResponse        // used when no indexed answer exists
}

// ApiMock is a scripted HTTP upstream, e.g. the inference endpoint.
// Unscripted calls get 200 with an empty JSON object.
type ApiMock struct {
	mu     sync.Mutex
	routes map[string]*route
	server *httptest.Server
}

// NewApiServer creates a mock that is not listening yet.
func NewApiServer() *ApiMock {
	return &ApiMock{
		routes: make(map[string]*route),
	}
}

// Start begins serving on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

// Close stops the server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

// SetResponse scripts the answer for the call with the given index on method and path.
// Index -1 sets the answer for every call without an indexed one.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.route(method, path)
	answer := cannedResponse{status: status, body: response}
	if index == -1 {
		r.fallback = &answer
		return
	}
	r.answers[index] = answer
}

// GetRequestBody returns the decoded JSON body of the call with the given index, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	if req, ok := a.request(method, path, index); ok {
		return req.body
	}
	return nil
}

// GetRequestHeaders returns the first value of each header of the call with the given index, or nil.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	if req, ok := a.request(method, path, index); ok {
		return req.headers
	}
	return nil
}

// ClearResponses forgets the calls and scripted answers of method and path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.routes, method+" "+path)
}

func (a *ApiMock) serve(w http.ResponseWriter, req *http.Request) {
	raw, _ := io.ReadAll(req.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	headers := make(map[string]string, len(req.Header))
	for key, values := range req.Header {
		headers[key] = values[0]
	}

	a.mu.Lock()
	r := a.route(req.Method, req.URL.Path)
	index := len(r.requests)
	r.requests = append(r.requests, recordedRequest{body: body, headers: headers})

	answer := cannedResponse{status: http.StatusOK, body: map[string]any{}}
	if indexed, ok := r.answers[index]; ok {
		answer = indexed
	} else if r.fallback != nil {
		answer = *r.fallback
	}
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(answer.status)
	_ = json.NewEncoder(w).Encode(answer.body)
}

func (a *ApiMock) request(method, path string, index int) (recordedRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r, ok := a.routes[method+" "+path]
	if !ok || index < 0 || index >= len(r.requests) {
		return recordedRequest{}, false
	}
	return r.requests[index], true
}

// route must be called with mu held.
func (a *ApiMock) route(method, path string) *route {
	key := method + " " + path
	r, ok := a.routes[key]
	if !ok {
		r = &route{answers: make(map[int]cannedResponse)}
		a.routes[key] = r
	}
	return r
}
