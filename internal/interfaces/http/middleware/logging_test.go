package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineldata/riskintel/internal/testutil"
)

func newLoggedRouter(log *testutil.MockLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequestLoggerEmitsOneLine(t *testing.T) {
	log := testutil.NewMockLogger()
	r := newLoggedRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	msgs := log.MessagesAt("info")
	require.Len(t, msgs, 1)
	assert.Equal(t, "http request", msgs[0].Message)

	fields := map[string]interface{}{}
	for _, f := range msgs[0].Fields {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ping", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestLoggerPropagatesRequestID(t *testing.T) {
	log := testutil.NewMockLogger()
	r := newLoggedRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	msgs := log.MessagesAt("info")
	require.Len(t, msgs, 1)
	for _, f := range msgs[0].Fields {
		if f.Key == "request_id" {
			assert.Equal(t, "req-42", f.Value)
		}
	}
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	log := testutil.NewMockLogger()
	r := newLoggedRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
