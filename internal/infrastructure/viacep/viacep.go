// Package viacep looks up Brazilian postal addresses on the public ViaCEP
// service. Successful responses are memoized: postal data changes rarely
// and the upstream is rate limited.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	defaultBaseURL  = "https://viacep.com.br/ws"
	requestTimeout  = 10 * time.Second
	cacheTTL        = 24 * time.Hour
	cacheSweepEvery = time.Hour
)

var ErrCEPNotFound = errors.New("cep not found")

type (
	Address struct {
		CEP          string `json:"cep"`
		Street       string `json:"logradouro"`
		Complement   string `json:"complemento"`
		Neighborhood string `json:"bairro"`
		City         string `json:"localidade"`
		State        string `json:"uf"`

		// ViaCEP answers 200 with {"erro": true} for unknown CEPs.
		Erro bool `json:"erro,omitempty"`
	}

	Client struct {
		logger  *zap.Logger
		baseURL string
		http    *http.Client
		cache   *gocache.Cache
	}
)

func New(logger *zap.Logger) *Client {
	return &Client{
		logger:  logger,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   gocache.New(cacheTTL, cacheSweepEvery),
	}
}

// NewWithBaseURL is used by tests to point the client at a local server.
func NewWithBaseURL(logger *zap.Logger, baseURL string) *Client {
	c := New(logger)
	c.baseURL = baseURL
	return c
}

// LookupCEP resolves a single 8-digit CEP.
func (c *Client) LookupCEP(ctx context.Context, cep string) (*Address, error) {
	if cached, ok := c.cache.Get("cep:" + cep); ok {
		a := cached.(Address)
		return &a, nil
	}

	var a Address
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(cep)), &a); err != nil {
		return nil, ErrCEPNotFound
	}
	if a.CEP == "" || a.Erro {
		return nil, ErrCEPNotFound
	}

	c.cache.Set("cep:"+cep, a, gocache.DefaultExpiration)

	return &a, nil
}

// SearchAddresses finds candidate addresses by state, city and street.
// The lookup is best effort: any failure yields an empty result, never an
// error, so a flaky upstream cannot break contact forms that use it for
// autocomplete.
func (c *Client) SearchAddresses(ctx context.Context, uf, city, street string) []Address {
	key := "search:" + uf + ":" + city + ":" + street
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]Address)
	}

	u := fmt.Sprintf("%s/%s/%s/%s/json/",
		c.baseURL, url.PathEscape(uf), url.PathEscape(city), url.PathEscape(street))

	var as []Address
	if err := c.getJSON(ctx, u, &as); err != nil {
		c.logger.Warn("viacep address search failed", zap.Error(err))
		return []Address{}
	}
	if len(as) == 0 {
		return []Address{}
	}

	c.cache.Set(key, as, gocache.DefaultExpiration)

	return as
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
