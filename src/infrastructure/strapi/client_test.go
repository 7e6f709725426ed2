package strapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func buildClient(config Config) (*Client, *[]time.Duration) {
	client := NewClient(config, &log.Logger)
	delays := &[]time.Duration{}
	client.sleep = func(delay time.Duration) {
		*delays = append(*delays, delay)
	}
	return client, delays
}

func TestGetJsonRetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	// given a server that fails twice before answering
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()
	client, delays := buildClient(Config{BaseURL: server.URL, Token: "token", MaxRetries: 3})

	// when
	body, err := client.GetJson(client.Url("components"))

	// then
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, *delays)
}

func TestGetJsonExhaustsRetries(t *testing.T) {
	t.Parallel()

	// given a permanently failing server
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	client, delays := buildClient(Config{BaseURL: server.URL, Token: "token", MaxRetries: 4})

	// when
	_, err := client.GetJson(client.Url("components") + "?pagination[pageSize]=10")

	// then exactly 4 attempts and 3 backoff delays, none after the last
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}, *delays)
	var exhausted RetriesExceededError
	assert.ErrorAs(t, err, &exhausted)
	assert.Equal(t, server.URL+"/v1/components", exhausted.Url)
	assert.ErrorContains(t, err, "Exceeded retries for")
	var status StatusError
	assert.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusBadGateway, status.Status)
}

func TestGetJsonRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	// given a server answering 200 with something that is not JSON
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer server.Close()
	client, _ := buildClient(Config{BaseURL: server.URL, Token: "token", MaxRetries: 1})

	// when
	_, err := client.GetJson(client.Url("components"))

	// then
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestGetJsonSendsAuthHeaders(t *testing.T) {
	t.Parallel()

	// given
	var authorization, accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		accept = r.Header.Get("Accept")
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()
	client, _ := buildClient(Config{BaseURL: server.URL, Token: "s3cret"})

	// when
	_, err := client.GetJson(client.Url("components"))

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", authorization)
	assert.Equal(t, "application/json", accept)
}

func TestProbe(t *testing.T) {
	t.Parallel()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	client, _ := buildClient(Config{BaseURL: server.URL, Token: "token"})

	// then any response counts, only a transport failure does not
	assert.True(t, client.Probe())
	server.Close()
	assert.False(t, client.Probe())
}

func TestUrlJoinsApiPrefix(t *testing.T) {
	t.Parallel()

	// given
	client, _ := buildClient(Config{BaseURL: "https://catalogue.example.com/", Token: "token"})

	// then
	assert.Equal(t, "https://catalogue.example.com/v1/components", client.Url("/components"))
}
