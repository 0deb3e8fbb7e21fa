package retailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

func newTestClient() *Client {
	return NewClient(5*time.Second, zap.NewNop())
}

func retailerFor(srv *httptest.Server, requiresKey bool, style domain.AuthStyle) domain.Retailer {
	return domain.Retailer{
		ID:      "teststore",
		Name:    "Test Store",
		BaseURL: srv.URL,
		APIConfig: domain.APIConfig{
			RequiresAPIKey: requiresKey,
			Endpoint:       srv.URL + "/search",
			AuthStyle:      style,
		},
	}
}

func TestGetJSON(t *testing.T) {
	t.Run("decodes payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"ok": true}`))
		}))
		defer srv.Close()

		body, err := newTestClient().GetJSON(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		m, ok := body.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, m["ok"])
	})

	t.Run("non-2xx maps to upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient().GetJSON(context.Background(), srv.URL, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstreamHTTP)
	})

	t.Run("invalid json maps to malformed error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		_, err := newTestClient().GetJSON(context.Background(), srv.URL, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})
}

func TestFetchProducts(t *testing.T) {
	t.Run("normalizes search results", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`{"products": [
				{"id": "p1", "name": "Silk Blouse", "price": 89.00, "colors": ["Ivory"]},
				{"id": "p2", "name": "Denim Jacket", "price": "59.99"}
			]}`))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		products, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{Query: "jacket"})
		require.NoError(t, err)
		require.Len(t, products, 2)

		assert.Equal(t, "jacket", gotQuery)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, []string{"Ivory"}, products[0].Colors)
		assert.Equal(t, "Test Store", products[0].RetailerName)
		assert.Equal(t, []string{domain.UnknownColor}, products[1].Colors)
		assert.Equal(t, []string{domain.OneSize}, products[1].Sizes)
	})

	t.Run("missing credential propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected without a credential")
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, true, domain.AuthBearer), "", newTestClient(), zap.NewNop())
		_, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{Query: "jacket"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})

	t.Run("upstream failure degrades to empty slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		products, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{Query: "jacket"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("malformed body degrades to empty slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		products, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{Query: "jacket"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("bare array response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "p1", "name": "Tote"}]`))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		products, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Tote", products[0].Name)
	})

	t.Run("configured results key wins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hits": [{"id": "p1", "name": "Scarf"}]}`))
		}))
		defer srv.Close()

		ret := retailerFor(srv, false, domain.AuthNone)
		ret.APIConfig.ResultsKey = "hits"
		adapter := NewGenericAdapter(ret, "", newTestClient(), zap.NewNop())
		products, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
	})
}

func TestAdapterAuthStyles(t *testing.T) {
	payload := `{"products": [{"id": "p1", "name": "Belt"}]}`

	t.Run("bearer header", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, true, domain.AuthBearer), "secret", newTestClient(), zap.NewNop())
		_, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret", gotAuth)
	})

	t.Run("custom header", func(t *testing.T) {
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-RapidAPI-Key")
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		ret := retailerFor(srv, true, domain.AuthHeader)
		ret.APIConfig.AuthHeader = "X-RapidAPI-Key"
		adapter := NewGenericAdapter(ret, "secret", newTestClient(), zap.NewNop())
		_, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, "secret", gotKey)
	})

	t.Run("query parameter", func(t *testing.T) {
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.URL.Query().Get("apiKey")
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		ret := retailerFor(srv, true, domain.AuthQueryParam)
		ret.APIConfig.AuthParam = "apiKey"
		adapter := NewGenericAdapter(ret, "secret", newTestClient(), zap.NewNop())
		_, err := adapter.FetchProducts(context.Background(), domain.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, "secret", gotKey)
	})
}

func TestGetProductDetails(t *testing.T) {
	t.Run("unwraps nested payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/p42", r.URL.Path)
			w.Write([]byte(`{"product": {"id": "p42", "name": "Wrap Dress", "price": 120, "category": "dresses"}}`))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		p, err := adapter.GetProductDetails(context.Background(), "p42")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "p42", p.ID)
		assert.Equal(t, "Dresses", p.Category)
	})

	t.Run("url template", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/items/p42", r.URL.Path)
			w.Write([]byte(`{"id": "p42", "name": "Wrap Dress"}`))
		}))
		defer srv.Close()

		ret := retailerFor(srv, false, domain.AuthNone)
		ret.ProductURLTemplate = srv.URL + "/v2/items/{id}"
		adapter := NewGenericAdapter(ret, "", newTestClient(), zap.NewNop())
		p, err := adapter.GetProductDetails(context.Background(), "p42")
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("not found yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		p, err := adapter.GetProductDetails(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("empty payload yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, false, domain.AuthNone), "", newTestClient(), zap.NewNop())
		p, err := adapter.GetProductDetails(context.Background(), "p1")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("missing credential propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected without a credential")
		}))
		defer srv.Close()

		adapter := NewGenericAdapter(retailerFor(srv, true, domain.AuthBearer), "", newTestClient(), zap.NewNop())
		_, err := adapter.GetProductDetails(context.Background(), "p1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})
}

func TestRegistryCreate(t *testing.T) {
	registry := NewRegistry(newTestClient(), zap.NewNop())

	ids := []string{IDAmazon, IDWalmart, IDTarget, IDASOS, "boutique-unknown"}
	for _, id := range ids {
		adapter := registry.Create(domain.Retailer{ID: id, Name: id}, "")
		require.NotNil(t, adapter, "adapter for %s", id)
		assert.Equal(t, id, adapter.Retailer().ID)
	}
}
