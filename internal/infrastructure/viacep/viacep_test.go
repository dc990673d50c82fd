package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLookupCEP_Success(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "Sao Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(zap.NewNop(), srv.URL)

	a, err := c.LookupCEP(context.Background(), "01310100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", a.Street)
	assert.Equal(t, "Sao Paulo", a.City)
	assert.Equal(t, "SP", a.State)

	// second lookup is served from cache
	_, err = c.LookupCEP(context.Background(), "01310100")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLookupCEP_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ViaCEP answers 200 with an erro marker for unknown CEPs
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(zap.NewNop(), srv.URL)

	_, err := c.LookupCEP(context.Background(), "99999999")
	require.ErrorIs(t, err, ErrCEPNotFound)
}

func TestLookupCEP_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWithBaseURL(zap.NewNop(), srv.URL)

	_, err := c.LookupCEP(context.Background(), "01310100")
	require.ErrorIs(t, err, ErrCEPNotFound)
}

func TestSearchAddresses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/SP/Sao%20Paulo/Paulista/json/", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"cep": "01310-100", "logradouro": "Avenida Paulista", "localidade": "Sao Paulo", "uf": "SP"},
			{"cep": "01311-000", "logradouro": "Avenida Paulista", "localidade": "Sao Paulo", "uf": "SP"}
		]`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(zap.NewNop(), srv.URL)

	as := c.SearchAddresses(context.Background(), "SP", "Sao Paulo", "Paulista")
	require.Len(t, as, 2)
	assert.Equal(t, "01310-100", as[0].CEP)

	// cached on repeat
	as = c.SearchAddresses(context.Background(), "SP", "Sao Paulo", "Paulista")
	require.Len(t, as, 2)
	assert.Equal(t, int32(1), hits.Load())
}

func TestSearchAddresses_BestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWithBaseURL(zap.NewNop(), srv.URL)

	as := c.SearchAddresses(context.Background(), "SP", "Sao Paulo", "Paulista")
	require.NotNil(t, as, "failures must yield an empty slice, not nil or an error")
	assert.Empty(t, as)
}
