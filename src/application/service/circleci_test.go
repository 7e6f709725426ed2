package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func buildCircleCIService(url string) *circleCIService {
	return &circleCIService{
		logger: log.Logger,
		url:    url + "/",
		token:  "circle-token",
		client: &http.Client{},
	}
}

func TestCircleCIConnect(t *testing.T) {
	t.Parallel()

	// given
	var token string
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/hmpps-project-bootstrap", req.URL.Path)
		token = req.Header.Get("Circle-Token")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer apiStub.Close()

	// when
	connected := buildCircleCIService(apiStub.URL).Connect()

	// then
	assert.True(t, connected)
	assert.Equal(t, "circle-token", token)
}

func TestCircleCITrivyScan(t *testing.T) {
	t.Parallel()

	// given
	var baseUrl string
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/hmpps-prisoner-search":
			_, _ = w.Write([]byte(`[
				{"build_num": 112, "workflows": {"workflow_name": "build-test-and-deploy", "job_name": "helm_lint"}},
				{"build_num": 99, "workflows": {"workflow_name": "security", "job_name": "hmpps/trivy_latest_scan"}},
				{"build_num": 98, "workflows": {"workflow_name": "security", "job_name": "hmpps/trivy_latest_scan"}}
			]`))
		case "/hmpps-prisoner-search/99/artifacts":
			_, _ = w.Write([]byte(fmt.Sprintf(`[
				{"url": "%s/artifacts/trivy.log"},
				{"url": "%s/artifacts/results.json"}
			]`, baseUrl, baseUrl)))
		case "/artifacts/results.json":
			_, _ = w.Write([]byte(`{"ArtifactName": "hmpps-prisoner-search", "Results": []}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer apiStub.Close()
	baseUrl = apiStub.URL

	// when
	results, err := buildCircleCIService(apiStub.URL).TrivyScan("hmpps-prisoner-search")

	// then
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"ArtifactName": "hmpps-prisoner-search", "Results": []any{}}, results)
}

func TestCircleCITrivyScanWhenNoSecurityBuild(t *testing.T) {
	t.Parallel()

	// given
	apiStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`[{"build_num": 5, "workflows": {"workflow_name": "build-test-and-deploy", "job_name": "build"}}]`))
	}))
	defer apiStub.Close()

	// when
	results, err := buildCircleCIService(apiStub.URL).TrivyScan("hmpps-prisoner-search")

	// then
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestCircleCIOrbVersion(t *testing.T) {
	t.Parallel()

	// given
	circleciConfig := map[string]any{
		"orbs": map[string]any{
			"hmpps": "ministryofjustice/hmpps@10.1.0",
			"slack": "circleci/slack@4.12.5",
		},
	}

	// when
	versions := buildCircleCIService("http://circleci.invalid").OrbVersion(circleciConfig)

	// then
	assert.Equal(t, map[string]any{
		"circleci": map[string]any{
			"hmpps_orb": map[string]any{"ref": "10.1.0", "path": ".circleci/config.yml"},
		},
	}, versions)
}

func TestCircleCIOrbVersionWhenAbsent(t *testing.T) {
	t.Parallel()

	// when
	versions := buildCircleCIService("http://circleci.invalid").OrbVersion(map[string]any{"version": 2.1})

	// then
	assert.Empty(t, versions)
}
