package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	r := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	r.Get("/health", ok)
	r.Post("/validate", ok)
	r.Get("/multi", ok)
	r.Put("/multi", ok)
	r.Delete("/multi", ok)

	r.MethodNotAllowed(CheckHTTPMethod(r))
	return r
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := newCheckMethodRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
		wantBody   string
	}{
		{
			name:       "registered method passes through",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong method on single-method route",
			method:     http.MethodGet,
			path:       "/validate",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "POST",
			wantBody:   `{"ok":false,"error":"method not allowed"}`,
		},
		{
			name:       "wrong method lists all allowed methods sorted",
			method:     http.MethodPost,
			path:       "/multi",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "DELETE, GET, PUT",
			wantBody:   `{"ok":false,"error":"method not allowed"}`,
		},
		{
			name:       "unknown path is a JSON 404",
			method:     http.MethodGet,
			path:       "/unknown",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"ok":false,"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			if tt.wantBody != "" {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethod(t *testing.T) {
	router := newCheckMethodRouter()

	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodPost, "/validate", nil))

	assert.Equal(t, http.StatusOK, rr.Code, "registered method must be forwarded to the router")
}

func TestAllowedMethods(t *testing.T) {
	route := chi.Route{Handlers: map[string]http.Handler{
		http.MethodPost: nil,
		http.MethodGet:  nil,
	}}

	assert.Equal(t, "GET, POST", allowedMethods(route))
}
