package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
	"github.com/guttosm/shipping-optimizer/internal/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubProvider returns canned quotes or a canned error.
type stubProvider struct {
	quotes []rate.Quote
	err    error
}

func (s *stubProvider) Quote(_ context.Context, _ []model.BoxPacking, _ rate.Destination) ([]rate.Quote, error) {
	return s.quotes, s.err
}

func newTestRouter(provider rate.Provider) *gin.Engine {
	if provider == nil {
		provider = rate.NewStaticProvider()
	}
	handler := NewHandler(optimizer.New(), provider, "static", optimizer.DefaultDimDivisor)
	return NewRouter(handler, NewHealthHandler(), RouterConfig{})
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	body := map[string]any{
		"products": []map[string]any{
			{
				"id":         "tote",
				"dimensions": map[string]float64{"length": 15, "width": 12, "height": 6},
				"weight":     0.8,
				"quantity":   3,
			},
			{
				"id":         "lego-castle",
				"dimensions": map[string]float64{"length": 18, "width": 14, "height": 3},
				"weight":     2.5,
			},
		},
	}

	w := postJSON(t, router, "/api/optimize", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data      model.ShipmentPlan `json:"data"`
		RequestID string             `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Less(t, resp.Data.Summary.TotalBoxes, 4)
	assert.Less(t, resp.Data.Summary.TotalCost, 36.0)
	assert.NotEmpty(t, resp.Data.Shipments)
}

func TestOptimizeEndpointValidation(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantErr  string
	}{
		{
			name:     "no products",
			body:     map[string]any{"products": []map[string]any{}},
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid_request",
		},
		{
			name: "zero dimension",
			body: map[string]any{
				"products": []map[string]any{
					{"id": "x", "dimensions": map[string]float64{"length": 0, "width": 1, "height": 1}, "weight": 1},
				},
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid_request",
		},
		{
			name:     "malformed json",
			body:     "not-an-object",
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/optimize", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp["error"])
		})
	}
}

func TestOptimizeEndpointValidationMessageNamesField(t *testing.T) {
	router := newTestRouter(nil)

	body := map[string]any{
		"products": []map[string]any{
			{"id": "x", "dimensions": map[string]float64{"length": 1, "width": 1, "height": 1}, "weight": 0},
		},
	}
	w := postJSON(t, router, "/api/optimize", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "products[0].weight")
}

func TestQuotesEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	body := map[string]any{
		"boxes": []map[string]any{
			{
				"boxId":     "large",
				"innerDims": map[string]float64{"length": 16, "width": 13, "height": 13},
				"weight":    1.6,
			},
		},
		"destination": map[string]string{"country": "US", "postalCode": "94107"},
	}

	w := postJSON(t, router, "/api/quotes", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []rate.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
}

func TestQuotesEndpointProviderFailure(t *testing.T) {
	router := newTestRouter(&stubProvider{err: errors.New("upstream unavailable")})

	body := map[string]any{
		"boxes": []map[string]any{
			{
				"boxId":     "large",
				"innerDims": map[string]float64{"length": 16, "width": 13, "height": 13},
				"weight":    1.6,
			},
		},
		"destination": map[string]string{"country": "US"},
	}

	w := postJSON(t, router, "/api/quotes", body)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bad_gateway", resp["error"])
}

func TestQuotesEndpointValidation(t *testing.T) {
	router := newTestRouter(nil)

	w := postJSON(t, router, "/api/quotes", map[string]any{
		"boxes":       []map[string]any{},
		"destination": map[string]string{"country": "US"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
