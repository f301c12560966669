package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/TauHsu/course-booking/internal/middleware"
)

const (
	userID   = "7d1c2b3a-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	courseID = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	itemID   = "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newContext builds a test context for a handler. params are name/value pairs.
func newContext(method, path, body string, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, http.NoBody)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx.Request = req

	for i := 0; i+1 < len(params); i += 2 {
		ctx.Params = append(ctx.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	return ctx, w
}

func asUser(ctx *gin.Context, id string) {
	ctx.Set(middleware.UserIDKey, id)
}

func readEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func readData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(readEnvelope(t, w).Data, out))
}
