package gtdb

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Ebedthan/xgt-sub000/internal/api"
	"github.com/Ebedthan/xgt-sub000/internal/logger"
)

const requestTimeout = 30 * time.Second

// Client performs single-shot GETs against the GTDB API. No retries, no
// backoff: a failure is reported once and propagated.
type Client struct {
	http *http.Client
	log  *zap.Logger
	base string
}

// NewClient builds a client. When insecure is true, TLS certificate
// verification is disabled so self-signed or invalid certificates are
// accepted.
func NewClient(insecure bool) *Client {
	c := &Client{
		http: &http.Client{Timeout: requestTimeout},
		log:  logger.GetLogger(),
		base: api.Host,
	}
	if insecure {
		c.http.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return c
}

// Get fetches url and classifies the outcome. HTTP 400 is how the API
// reports an unknown taxon or accession, so it surfaces as notFoundMsg.
func (c *Client) Get(url, notFoundMsg string) ([]byte, error) {
	c.log.Debug("GET", zap.String("url", url))

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusBadRequest:
		return nil, errors.New(notFoundMsg)
	default:
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return body, nil
}

// GetJSON fetches url and decodes the body into v.
func (c *Client) GetJSON(url, notFoundMsg string, v any) error {
	body, err := c.Get(url, notFoundMsg)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %T response: %w", v, err)
	}
	return nil
}

// StatusDB is the /status/db probe response.
type StatusDB struct {
	TimeMs float64 `json:"timeMs"`
	Online bool    `json:"online"`
}

// APIVersion is the /meta/version probe response.
type APIVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v APIVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Status probes whether the database behind the API is reachable.
func (c *Client) Status() (*StatusDB, error) {
	var status StatusDB
	if err := c.GetJSON(c.base+"/status/db", "status endpoint not found", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Version reports the remote API version.
func (c *Client) Version() (*APIVersion, error) {
	var version APIVersion
	if err := c.GetJSON(c.base+"/meta/version", "version endpoint not found", &version); err != nil {
		return nil, err
	}
	return &version, nil
}
