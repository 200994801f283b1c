package printful

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-catalog/pkg/apierrors"
)

func TestUnconfiguredClient(t *testing.T) {
	c := NewClient("")
	_, err := c.GetStoreInfo(context.Background())
	assert.True(t, errors.Is(err, apierrors.ErrNotConfigured))
}

func TestCreateSyncProduct(t *testing.T) {
	var captured syncProductRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/products", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"code":200,"result":{"id":42,"name":"Sunset"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.SetBaseURL(srv.URL)

	created, err := c.CreateSyncProduct(context.Background(), "Sunset", "https://example.com/a.jpg", 24.99, "poster_12x18")
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)

	assert.Equal(t, "Sunset", captured.SyncProduct.Name)
	require.Len(t, captured.SyncVariants, 1)
	assert.Equal(t, 4783, captured.SyncVariants[0].VariantID)
	assert.Equal(t, "24.99", captured.SyncVariants[0].RetailPrice)
	require.Len(t, captured.SyncVariants[0].Files, 1)
	assert.Equal(t, "https://example.com/a.jpg", captured.SyncVariants[0].Files[0].URL)
}

func TestCreateSyncProductUnknownType(t *testing.T) {
	c := NewClient("test-key")
	_, err := c.CreateSyncProduct(context.Background(), "t", "u", 10, "hologram_9000")
	assert.True(t, errors.Is(err, apierrors.ErrInvalidInput))
}

func TestAPIErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"error":{"message":"bad file url"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.SetBaseURL(srv.URL)

	_, err := c.GetStoreInfo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad file url")
}

func TestAvailableProductTypes(t *testing.T) {
	types := AvailableProductTypes()
	assert.Len(t, types, len(Products))
	assert.Contains(t, types, "poster_12x18")
	assert.Contains(t, types, "mug_11oz")
	// Stable order, and every type has a suggested price.
	assert.IsType(t, []string{}, types)
	for _, key := range types {
		_, ok := SuggestedPrices[key]
		assert.True(t, ok, "missing suggested price for %s", key)
	}
}
