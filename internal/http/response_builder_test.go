package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilderSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	NewResponseBuilder(c).SuccessOK(map[string]int{"boxes": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"boxes": float64(3)}, resp["data"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestResponseBuilderError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	NewResponseBuilder(c).Error(http.StatusUnprocessableEntity, "no box fits", assert.AnError)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unprocessable", resp["error"])
	assert.Equal(t, "no box fits", resp["message"])
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
}

func TestUnmarshalFromReader(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	got, err := UnmarshalFromReader[payload](strings.NewReader(`{"name":"large"}`))
	require.NoError(t, err)
	assert.Equal(t, "large", got.Name)

	_, err = UnmarshalFromReader[payload](strings.NewReader(`{broken`))
	assert.Error(t, err)
}
