package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, 0, logger.NewNop())
}

func TestClient_GetProducts_Success(t *testing.T) {
	var gotPath, gotBusiness string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBusiness = r.URL.Query().Get("businessId")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"p1","name":"Haircut","type":"service","status":"online","duration":45,"offers":{"price":30,"priceCurrency":"EUR"}},
			{"_id":"p2","name":"Shampoo","type":"product","status":"active","offers":{"price":12.5}}
		]`))
	})

	products, err := client.GetProducts(context.Background(), "biz-1")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/products", gotPath)
	assert.Equal(t, "biz-1", gotBusiness)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].IsService())
	assert.Equal(t, 45, products[0].DurationOrDefault())
	assert.Equal(t, "EUR", products[0].Offers.PriceCurrency)
	assert.Equal(t, 12.5, products[1].Offers.Price)
}

func TestClient_GetProducts_NullBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	})

	products, err := client.GetProducts(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestClient_GetProducts_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"code":1,"message":"boom"}`))
			})

			_, err := client.GetProducts(context.Background(), "biz-1")
			assert.ErrorIs(t, err, ErrRemoteFailure)
		})
	}
}

func TestClient_GetProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, 200*time.Millisecond, 0, logger.NewNop())
	_, err := client.GetProducts(context.Background(), "biz-1")
	assert.ErrorIs(t, err, ErrRemoteFailure)
}

func TestClient_GetProducts_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":`))
	})

	_, err := client.GetProducts(context.Background(), "biz-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
