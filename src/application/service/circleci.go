package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/config"
	"github.com/input-output-hk/varro/src/util"
)

type CircleCIService interface {
	// Connect probes the API with a request against the bootstrap
	// project.
	Connect() bool

	// TrivyScan fetches the results artifact of the latest security
	// workflow scan of the project. A project without such a build
	// or artifact yields nil, not an error.
	TrivyScan(project string) (map[string]any, error)

	// OrbVersion extracts the hmpps orb pin from a parsed circleci
	// config, keyed the way component versions are recorded.
	OrbVersion(circleciConfig map[string]any) map[string]any
}

type circleCIService struct {
	logger zerolog.Logger
	url    string
	token  string
	client *http.Client
}

func NewCircleCIService(cfg config.CircleCIConfig, logger *zerolog.Logger) CircleCIService {
	return &circleCIService{
		logger: logger.With().Str("component", "CircleCIService").Logger(),
		url:    cfg.Url,
		token:  cfg.Token,
		client: &http.Client{},
	}
}

func (self *circleCIService) Connect() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var builds json.RawMessage
	if err := self.getJson(ctx, self.url+"hmpps-project-bootstrap", &builds); err != nil {
		self.logger.Error().Err(err).Msg("Unable to connect to the CircleCI API")
		return false
	}
	self.logger.Info().Msg("Successfully connected to the CircleCI API")
	return true
}

func (self *circleCIService) TrivyScan(project string) (map[string]any, error) {
	self.logger.Debug().Msgf("Getting trivy scan data for %s", project)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectUrl := self.url + project
	var builds []struct {
		BuildNum  int `json:"build_num"`
		Workflows struct {
			WorkflowName string `json:"workflow_name"`
			JobName      string `json:"job_name"`
		} `json:"workflows"`
	}
	if err := self.getJson(ctx, projectUrl, &builds); err != nil {
		return nil, errors.WithMessagef(err, "Could not list builds for %s", project)
	}

	artifactsUrl := ""
	for _, build := range builds {
		if build.Workflows.WorkflowName == "security" && build.Workflows.JobName == "hmpps/trivy_latest_scan" {
			artifactsUrl = fmt.Sprintf("%s/%d/artifacts", projectUrl, build.BuildNum)
			break
		}
	}
	if artifactsUrl == "" {
		self.logger.Debug().Msgf("No security scan build found for %s", project)
		return nil, nil
	}

	self.logger.Debug().Msg("Getting artifact URLs from CircleCI")
	var artifacts []struct {
		Url string `json:"url"`
	}
	if err := self.getJson(ctx, artifactsUrl, &artifacts); err != nil {
		return nil, errors.WithMessagef(err, "Could not list scan artifacts for %s", project)
	}

	resultsUrl := ""
	for _, artifact := range artifacts {
		if strings.Contains(artifact.Url, "results.json") {
			resultsUrl = artifact.Url
			break
		}
	}
	if resultsUrl == "" {
		self.logger.Debug().Msgf("No results artifact found for %s", project)
		return nil, nil
	}

	var results map[string]any
	if err := self.getJson(ctx, resultsUrl, &results); err != nil {
		return nil, errors.WithMessagef(err, "Could not fetch the scan results for %s", project)
	}
	return results, nil
}

func (self *circleCIService) OrbVersion(circleciConfig map[string]any) map[string]any {
	versions := map[string]any{}
	orbs, _ := circleciConfig["orbs"].(map[string]any)
	for _, value := range orbs {
		orb, ok := value.(string)
		if !ok || !strings.Contains(orb, "ministryofjustice/hmpps") {
			continue
		}
		if _, version, found := strings.Cut(orb, "@"); found {
			util.UpdateMap(versions, "circleci", map[string]any{
				"hmpps_orb": map[string]any{"ref": version, "path": ".circleci/config.yml"},
			})
			self.logger.Debug().Msgf("hmpps orb version: %s", version)
		}
	}
	return versions
}

func (self *circleCIService) getJson(ctx context.Context, url string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Circle-Token", self.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := self.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("Unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
