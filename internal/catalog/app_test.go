package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"OnlineStore/internal/catalog"
)

func newCatalogTS(t *testing.T, deps catalog.HTTPDeps) *httptest.Server {
	t.Helper()

	store := catalog.NewMemStore()
	s := &catalog.Server{Service: catalog.NewService(store), Log: zap.NewNop()}

	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Service == "" {
		deps.Service = "catalog"
	}

	ts := httptest.NewServer(catalog.NewHandler(s, deps))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAPI_ListProducts(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	var products []catalog.Product
	resp := getJSON(t, ts.URL+"/api/products", &products)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Len(t, products, 2)
	for _, p := range products {
		assert.NotNil(t, p.ID)
		assert.NotNil(t, p.Name)
	}
}

func TestAPI_GetProduct(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	t.Run("existing", func(t *testing.T) {
		var p catalog.Product
		resp := getJSON(t, ts.URL+"/api/products/1", &p)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, p.ID)
		assert.Equal(t, int64(1), *p.ID)
		assert.Equal(t, "Sample Product A", *p.Name)
	})

	t.Run("missing id returns 404 with empty body", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/products/424242", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, bytes.TrimSpace(body))
	})

	t.Run("non-numeric id returns 404 with empty body", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/products/not-a-number", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, bytes.TrimSpace(body))
	})
}

func TestAPI_CreateProduct(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	resp := postJSON(t, ts.URL+"/api/products", `{"id":null,"name":"Widget","price":9.99}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/products/3", resp.Header.Get("Location"))

	var created catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(3), *created.ID)
	assert.Equal(t, "Widget", *created.Name)

	var fetched catalog.Product
	getResp := getJSON(t, ts.URL+resp.Header.Get("Location"), &fetched)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	assert.Equal(t, "Widget", *fetched.Name)
	assert.Equal(t, catalog.Price(9.99), fetched.Price)
}

func TestAPI_CreateProduct_NaNPriceRoundTrip(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	resp := postJSON(t, ts.URL+"/api/products", `{"name":"Cursed","price":"NaN"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var fetched catalog.Product
	getJSON(t, ts.URL+resp.Header.Get("Location"), &fetched)
	assert.True(t, math.IsNaN(float64(fetched.Price)))
}

func TestAPI_CreateProduct_BadJSON(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	resp := postJSON(t, ts.URL+"/api/products", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CreateProduct_RateLimited(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{CreateLimitPerMin: 1})

	resp := postJSON(t, ts.URL+"/api/products", `{"name":"first","price":1}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/products", `{"name":"second","price":2}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// reads are never throttled
	listResp := getJSON(t, ts.URL+"/api/products", nil)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}

// failingService stands in for a service whose backing store broke, to pin
// down that unexpected errors surface as 500 and are not folded into 404.
type failingService struct{}

func (failingService) ListAll() []catalog.Product { return nil }
func (failingService) GetOrFail(*int64) (catalog.Product, error) {
	return catalog.Product{}, errors.New("backing store unavailable")
}
func (failingService) Create(p catalog.Product) catalog.Product { return p }
func (failingService) Count() int                               { return 0 }
func (failingService) Ping(context.Context) error               { return nil }

func TestAPI_GetProduct_InternalErrorIsNot404(t *testing.T) {
	s := &catalog.Server{Service: failingService{}, Log: zap.NewNop()}
	ts := httptest.NewServer(catalog.NewHandler(s, catalog.HTTPDeps{Log: zap.NewNop(), Service: "catalog"}))
	t.Cleanup(ts.Close)

	resp := getJSON(t, ts.URL+"/api/products/1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	deps := catalog.HTTPDeps{
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   "s3cr3t",
	}
	ts := newCatalogTS(t, deps)

	t.Run("without token", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/metrics", nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("with token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/metrics", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer s3cr3t")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "catalog_products")
	})
}
