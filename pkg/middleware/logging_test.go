package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eprocurement-ocds/revision/pkg/composables"
	"github.com/eprocurement-ocds/revision/pkg/configuration"
	"github.com/eprocurement-ocds/revision/pkg/middleware"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	conf := &configuration.Configuration{RequestIDHeader: "X-Request-ID"}

	t.Run("propagates the inbound request id", func(t *testing.T) {
		t.Parallel()
		var seenID string
		handler := middleware.RequestLogger(newTestLogger(), conf)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := composables.UseRequestID(r.Context())
			require.True(t, ok)
			seenID = id
		}))

		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.Header.Set("X-Request-ID", "req-42")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "req-42", seenID)
		assert.Equal(t, "req-42", recorder.Header().Get("X-Request-Id"))
	})

	t.Run("generates an id when the header is absent", func(t *testing.T) {
		t.Parallel()
		handler := middleware.RequestLogger(newTestLogger(), conf)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
	})

	t.Run("recovers panics with a 500", func(t *testing.T) {
		t.Parallel()
		handler := middleware.RequestLogger(newTestLogger(), conf)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		recorder := httptest.NewRecorder()
		require.NotPanics(t, func() {
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
