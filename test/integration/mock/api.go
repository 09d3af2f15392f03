package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a recording HTTP server standing in for a third-party API.
// Responses are configured per method and path; unconfigured calls get a
// 200 with an empty JSON object.
type ApiMock struct {
	mu                    sync.Mutex
	server                *httptest.Server
	headersReceived       map[string][]map[string]string
	requestsReceived      map[string][]map[string]any
	responseMap           map[string]map[int]any
	defaultResponseMap    map[string]any
	responseStatus        map[string]map[int]int
	defaultResponseStatus map[string]int
}

func NewApiServer() *ApiMock {
	a := &ApiMock{}
	a.Reset()
	return a
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}

	a.mu.Lock()
	index := len(a.requestsReceived[key])
	a.requestsReceived[key] = append(a.requestsReceived[key], request)
	a.headersReceived[key] = append(a.headersReceived[key], headers)
	status, response := a.responseFor(key, index)
	a.mu.Unlock()

	raw, _ := json.Marshal(response)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// SetResponse configures the response to the index-th call; index -1 sets
// the default for every call without its own response.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaultResponseStatus[key] = status
		a.defaultResponseMap[key] = response
		return
	}
	if a.responseMap[key] == nil {
		a.responseMap[key] = map[int]any{}
		a.responseStatus[key] = map[int]int{}
	}
	a.responseMap[key][index] = response
	a.responseStatus[key][index] = status
}

func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requestsReceived[method+path])
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	requests := a.requestsReceived[method+path]
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index]
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	headers := a.headersReceived[method+path]
	if index < 0 || index >= len(headers) {
		return nil
	}
	return headers[index]
}

// Reset forgets recorded requests and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.headersReceived = map[string][]map[string]string{}
	a.requestsReceived = map[string][]map[string]any{}
	a.responseMap = map[string]map[int]any{}
	a.defaultResponseMap = map[string]any{}
	a.responseStatus = map[string]map[int]int{}
	a.defaultResponseStatus = map[string]int{}
}

func (a *ApiMock) responseFor(key string, index int) (int, any) {
	status := http.StatusOK
	var response any = map[string]any{}

	if s, ok := a.defaultResponseStatus[key]; ok && s != 0 {
		status = s
	}
	if r, ok := a.defaultResponseMap[key]; ok && r != nil {
		response = r
	}
	if s, ok := a.responseStatus[key][index]; ok && s != 0 {
		status = s
	}
	if r, ok := a.responseMap[key][index]; ok && r != nil {
		response = r
	}
	return status, response
}
