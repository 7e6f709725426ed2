package strapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultPageSize   = 10
)

type Config struct {
	// BaseURL is the root of the catalogue, without the API prefix.
	BaseURL string
	// Token is sent as a bearer credential on every request.
	Token      string
	Timeout    time.Duration
	MaxRetries int
	PageSize   int
	// Filter is an optional pre-rendered query fragment such as
	// "&filters[name][$contains]=example", applied to every
	// components listing to limit results in testing.
	Filter string
}

// Client speaks plain HTTP to the catalogue: one GET with retries and
// backoff for reads, one uninterpreted request for everything else.
type Client struct {
	config Config
	http   *http.Client
	sleep  func(time.Duration)
	logger zerolog.Logger
}

func NewClient(config Config, logger *zerolog.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		sleep:  time.Sleep,
		logger: logger.With().Str("component", "CatalogueClient").Logger(),
	}
}

// Url joins the API prefix and a collection uri onto the base url.
func (self *Client) Url(uri string) string {
	return strings.TrimRight(self.config.BaseURL, "/") + "/v1/" + strings.TrimLeft(uri, "/")
}

func (self *Client) Filter() string {
	return self.config.Filter
}

func (self *Client) PageSize() int {
	return self.config.PageSize
}

// Probe checks that the catalogue answers at all. Any response counts
// as success, only a transport failure does not.
func (self *Client) Probe() bool {
	self.logger.Info().Msgf("Testing connection to the service catalogue - %s", self.config.BaseURL)
	status, _, err := self.Send(http.MethodHead, self.config.BaseURL, nil)
	if err != nil {
		self.logger.Error().Err(err).Msg("Unable to connect to the service catalogue")
		return false
	}
	self.logger.Info().Msgf("Successfully connected to the service catalogue - %s. %d", self.config.BaseURL, status)
	return true
}

// GetJson fetches the url and returns the body once a response both
// has a success status and parses as JSON, retrying with exponential
// backoff. After the configured attempt budget it fails with a
// RetriesExceededError carrying the last cause.
func (self *Client) GetJson(url string) ([]byte, error) {
	name := Basename(url)
	var lastErr error
	for attempt := 1; attempt <= self.config.MaxRetries; attempt++ {
		body, err := self.getOnce(url)
		if err == nil {
			self.logger.Info().Msgf("Fetched %s", name)
			return body, nil
		}
		lastErr = err
		fetchFailures.Inc()
		self.logger.Warn().Err(err).Msgf("Service catalogue API error for %s (attempt %d/%d)", name, attempt, self.config.MaxRetries)
		if attempt < self.config.MaxRetries {
			self.sleep(Backoff(attempt))
		}
	}
	return nil, RetriesExceededError{Url: name, Err: lastErr}
}

func (self *Client) getOnce(url string) ([]byte, error) {
	status, body, err := self.Send(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, StatusError{Status: status, Url: Basename(url)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("Response from %s is not valid JSON", Basename(url))
	}
	return body, nil
}

// Send performs a single request without interpreting the response
// status, returning it along with the full body. A non-nil payload is
// sent as the JSON request body.
func (self *Client) Send(method, url string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+self.config.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := self.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// Backoff returns the delay that follows the given one-based attempt:
// half a second, doubled after every further failure.
func Backoff(attempt int) time.Duration {
	return 500 * time.Millisecond << uint(attempt-1)
}
