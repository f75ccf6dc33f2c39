//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serve runs handlerFunc against a test context built from method, target and body.
func serve(handlerFunc gin.HandlerFunc, method, target, body string, params ...gin.Param) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	handlerFunc(c)
	return w
}

func seq(value string) gin.Param {
	return gin.Param{Key: "seq", Value: value}
}

type envelope struct {
	Status  string                 `json:"status"`
	Data    map[string]interface{} `json:"data"`
	Message *string                `json:"message"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), w.Body.String())
	return e
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }
