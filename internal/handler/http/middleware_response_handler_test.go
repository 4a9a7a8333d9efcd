package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorderWriter() (*responseWriter, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return &responseWriter{ResponseWriter: rec}, rec
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		codes      []int
		wantStatus int
	}{
		{name: "single 200", codes: []int{http.StatusOK}, wantStatus: http.StatusOK},
		{name: "single 404", codes: []int{http.StatusNotFound}, wantStatus: http.StatusNotFound},
		{name: "single 502", codes: []int{http.StatusBadGateway}, wantStatus: http.StatusBadGateway},
		{name: "second call is ignored", codes: []int{http.StatusCreated, http.StatusInternalServerError}, wantStatus: http.StatusCreated},
		{name: "three calls keep the first", codes: []int{http.StatusTooManyRequests, http.StatusOK, http.StatusTeapot}, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newRecorderWriter()
			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

// ---- Write ----

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	w, rec := newRecorderWriter()

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	w, rec := newRecorderWriter()

	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"ok":`))
	_, _ = w.Write([]byte(`true}`))

	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestResponseWriter_Write_Empty(t *testing.T) {
	w, _ := newRecorderWriter()

	n, err := w.Write(nil)
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Zero(t, w.size)
	assert.True(t, w.wroteHeader)
}

// ---- statusOrOK ----

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w, _ := newRecorderWriter()
	assert.Equal(t, http.StatusOK, w.statusOrOK(), "nothing written defaults to 200")

	w.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, w.statusOrOK())
}

// ---- Unwrap ----

func TestResponseWriter_Unwrap(t *testing.T) {
	w, rec := newRecorderWriter()
	assert.Same(t, rec, w.Unwrap())

	// http.ResponseController reaches the recorder's Flush through Unwrap.
	err := http.NewResponseController(w).Flush()
	assert.NoError(t, err)
	assert.True(t, rec.Flushed)
}

// ---- Headers are passed through ----

func TestResponseWriter_HeaderPassThrough(t *testing.T) {
	w, rec := newRecorderWriter()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
