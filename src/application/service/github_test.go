package service

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"testing"

	"github.com/google/go-github/v50/github"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/varro/src/domain"
)

func buildGithubService(apiUrl string) *githubService {
	client := github.NewClient(nil)
	baseUrl, _ := neturl.Parse(apiUrl + "/")
	client.BaseURL = baseUrl
	return &githubService{
		logger: log.Logger,
		client: client,
		org:    "ministryofjustice",
	}
}

func TestGithubOrgTeams(t *testing.T) {
	t.Parallel()

	// given
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch req.URL.Path {
		case "/orgs/ministryofjustice/teams":
			_, _ = w.Write([]byte(`[
				{"id": 101, "slug": "hmpps-developers", "description": "All HMPPS developers", "parent": {"slug": "hmpps"}},
				{"id": 102, "slug": "hmpps-sre"}
			]`))
		case "/orgs/ministryofjustice/teams/hmpps-developers/members":
			_, _ = w.Write([]byte(`[{"login": "alice"}, {"login": "bob"}]`))
		case "/orgs/ministryofjustice/teams/hmpps-sre/members":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer apiStub.Close()

	// when
	teams, err := buildGithubService(apiStub.URL).OrgTeams()

	// then
	assert.NoError(t, err)
	assert.Equal(t, []domain.Team{
		{TeamID: 101, Name: "hmpps-developers", Parent: "hmpps", Description: "All HMPPS developers", Members: []string{"alice", "bob"}},
		{TeamID: 102, Name: "hmpps-sre"},
	}, teams)
}

func TestGithubCodeScanningSummary(t *testing.T) {
	t.Parallel()

	// given
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/repos/ministryofjustice/hmpps-auth/code-scanning/alerts", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"state": "open", "html_url": "https://github.com/alerts/1", "rule": {"id": "CVE-2024-1111", "security_severity_level": "high"}},
			{"state": "fixed", "html_url": "https://github.com/alerts/2", "rule": {"id": "CVE-2024-2222", "security_severity_level": "critical"}},
			{"state": "open", "html_url": "https://github.com/alerts/3", "rule": {"id": "CVE-2024-1111", "security_severity_level": "medium"}},
			{"state": "open", "html_url": "https://github.com/alerts/4", "rule": {"id": "CVE-2024-3333"}}
		]`))
	}))
	defer apiStub.Close()

	// when
	summary, err := buildGithubService(apiStub.URL).CodeScanningSummary("hmpps-auth")

	// then
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"HIGH": 1, "UNKNOWN": 1}, summary.Counts)
	assert.Equal(t, []Vulnerability{
		{Cve: "CVE-2024-1111", Severity: "HIGH", Url: "https://github.com/alerts/1"},
		{Cve: "CVE-2024-3333", Severity: "UNKNOWN", Url: "https://github.com/alerts/4"},
	}, summary.Vulnerabilities)
}

func TestGithubCodeScanningSummaryWhenNotEnabled(t *testing.T) {
	t.Parallel()

	// given
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"message": "Code scanning is not enabled"}`, http.StatusNotFound)
	}))
	defer apiStub.Close()

	// when
	summary, err := buildGithubService(apiStub.URL).CodeScanningSummary("hmpps-book-a-visit")

	// then
	assert.NoError(t, err)
	assert.Empty(t, summary.Counts)
	assert.Empty(t, summary.Vulnerabilities)
}

func TestGithubGetFileYaml(t *testing.T) {
	t.Parallel()

	// given
	values := "generic_service:\n  image: quay.io/hmpps/hmpps-auth\n  tag: \"2024-01\"\n"
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/repos/ministryofjustice/hmpps-auth/contents/helm_deploy/values.yaml", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fmt.Sprintf(
			`{"type": "file", "name": "values.yaml", "encoding": "base64", "content": "%s"}`,
			base64.StdEncoding.EncodeToString([]byte(values)),
		)))
	}))
	defer apiStub.Close()

	// when
	decoded, err := buildGithubService(apiStub.URL).GetFileYaml("hmpps-auth", "helm_deploy/values.yaml")

	// then
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"generic_service": map[string]any{
			"image": "quay.io/hmpps/hmpps-auth",
			"tag":   "2024-01",
		},
	}, decoded)
}

func TestGithubGetFileYamlWhenMissing(t *testing.T) {
	t.Parallel()

	// given
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer apiStub.Close()

	// when
	decoded, err := buildGithubService(apiStub.URL).GetFileYaml("hmpps-auth", "no/such/file.yaml")

	// then
	assert.NoError(t, err)
	assert.Nil(t, decoded)
}
