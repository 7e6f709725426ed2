package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-github/v50/github"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"github.com/input-output-hk/varro/src/config"
	"github.com/input-output-hk/varro/src/domain"
)

type GithubService interface {
	// Connect checks the API answers and logs the remaining rate
	// limit budget.
	Connect() bool

	// OrgTeams returns every team of the organization with its
	// member logins resolved.
	OrgTeams() ([]domain.Team, error)

	GetOrgRepo(name string) (*github.Repository, error)
	GetFileYaml(repo, path string) (map[string]any, error)
	GetFileJson(repo, path string) (map[string]any, error)
	GetFilePlain(repo, path string) (string, error)

	// CodeScanningSummary aggregates the repo's open code scanning
	// alerts into per severity counts and the worst finding per CVE.
	CodeScanningSummary(repo string) (ScanSummary, error)

	ArchiveRepo(name string) error
}

// ScanSummary is the digest of a repository's open code scanning
// alerts: how many findings per severity and, per CVE, the most
// severe one.
type ScanSummary struct {
	Counts          map[string]int  `json:"counts,omitempty"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty"`
}

type Vulnerability struct {
	Cve      string `json:"cve"`
	Severity string `json:"severity"`
	Url      string `json:"url"`
}

var severityOrder = map[string]int{
	"UNKNOWN":  0,
	"LOW":      1,
	"MEDIUM":   2,
	"HIGH":     3,
	"CRITICAL": 4,
}

type githubService struct {
	logger zerolog.Logger
	client *github.Client
	org    string
}

// NewGithubService authenticates either as a GitHub App, trading a
// short lived RS256 app token for an installation token, or with a
// plain access token when no private key is configured.
func NewGithubService(cfg config.GithubConfig, logger *zerolog.Logger) (GithubService, error) {
	self := &githubService{
		logger: logger.With().Str("component", "GithubService").Logger(),
		org:    cfg.Org,
	}

	token := cfg.AccessToken
	if cfg.AppPrivateKey != "" {
		appToken, err := self.installationToken(cfg)
		if err != nil {
			return nil, err
		}
		token = appToken
	}
	if token == "" {
		return nil, errors.New("An app private key or access token is required for a github session")
	}

	self.client = github.NewClient(oauth2.NewClient(httpContext(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))
	return self, nil
}

// httpContext carries the retrying transport every GitHub call goes
// out on.
func httpContext() context.Context {
	retry := retryablehttp.NewClient()
	retry.Logger = nil
	retry.RetryMax = 3
	return context.WithValue(context.Background(), oauth2.HTTPClient, retry.StandardClient())
}

func (self *githubService) installationToken(cfg config.GithubConfig) (string, error) {
	self.logger.Debug().Msg("Using private key to get access token")

	pem, err := base64.StdEncoding.DecodeString(cfg.AppPrivateKey)
	if err != nil {
		return "", errors.WithMessage(err, "Could not decode the app private key")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return "", errors.WithMessage(err, "Could not parse the app private key")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		Issuer:    cfg.AppId,
	}
	bearer, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.WithMessage(err, "Could not sign the app token")
	}

	appClient := github.NewClient(oauth2.NewClient(httpContext(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: bearer})))
	token, _, err := appClient.Apps.CreateInstallationToken(context.Background(), cfg.AppInstallationId, &github.InstallationTokenOptions{})
	if err != nil {
		return "", errors.WithMessage(err, "Unable to authenticate to the github API")
	}
	return token.GetToken(), nil
}

func (self *githubService) Connect() bool {
	limits, _, err := self.client.RateLimits(context.Background())
	if err != nil {
		self.logger.Error().Err(err).Msg("Unable to connect to the github API")
		return false
	}
	core := limits.GetCore()
	self.logger.Info().Msgf("Github API - rate limit: %d/%d remaining", core.Remaining, core.Limit)
	return true
}

func (self *githubService) OrgTeams() (teams []domain.Team, err error) {
	self.logger.Trace().Str("org", self.org).Msg("Listing organization teams")

	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := self.client.Teams.ListTeams(context.Background(), self.org, opts)
		if err != nil {
			return nil, errors.WithMessage(err, "Unable to load github teams")
		}
		for _, team := range page {
			members, err := self.teamMembers(team.GetSlug())
			if err != nil {
				self.logger.Warn().Err(err).Msgf("Could not list members of team %s", team.GetSlug())
			}
			teams = append(teams, domain.Team{
				TeamID:      team.GetID(),
				Name:        team.GetSlug(),
				Parent:      team.GetParent().GetSlug(),
				Description: team.GetDescription(),
				Members:     members,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	self.logger.Debug().Msgf("Loaded list of %d team slugs", len(teams))
	return teams, nil
}

func (self *githubService) teamMembers(slug string) (members []string, err error) {
	opts := &github.TeamListTeamMembersOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		page, resp, err := self.client.Teams.ListTeamMembersBySlug(context.Background(), self.org, slug, opts)
		if err != nil {
			return members, err
		}
		for _, member := range page {
			members = append(members, member.GetLogin())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return members, nil
}

func (self *githubService) GetOrgRepo(name string) (*github.Repository, error) {
	repo, _, err := self.client.Repositories.Get(context.Background(), self.org, name)
	if err != nil {
		return nil, errors.WithMessagef(err, "Error trying to get the repo %s from Github", name)
	}
	return repo, nil
}

func (self *githubService) contents(repo, path string) (string, error) {
	file, _, resp, err := self.client.Repositories.GetContents(context.Background(), self.org, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			self.logger.Debug().Msgf("404 File not found %s:%s", repo, path)
			return "", nil
		}
		return "", err
	}
	if file == nil {
		return "", errors.Errorf("%s:%s is a directory, not a file", repo, path)
	}
	return file.GetContent()
}

func (self *githubService) GetFileYaml(repo, path string) (map[string]any, error) {
	contents, err := self.contents(repo, path)
	if err != nil || contents == "" {
		return nil, errors.WithMessagef(err, "Error getting yaml file (%s)", path)
	}
	var decoded map[string]any
	// Tabs are invalid YAML but show up in the wild.
	if err := yaml.Unmarshal([]byte(strings.ReplaceAll(contents, "\t", "  ")), &decoded); err != nil {
		return nil, errors.WithMessagef(err, "Error getting yaml file (%s)", path)
	}
	return decoded, nil
}

func (self *githubService) GetFileJson(repo, path string) (map[string]any, error) {
	contents, err := self.contents(repo, path)
	if err != nil || contents == "" {
		return nil, errors.WithMessagef(err, "Error getting json file (%s)", path)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(contents), &decoded); err != nil {
		return nil, errors.WithMessagef(err, "Error getting json file (%s)", path)
	}
	return decoded, nil
}

func (self *githubService) GetFilePlain(repo, path string) (string, error) {
	contents, err := self.contents(repo, path)
	if err != nil {
		return "", errors.WithMessagef(err, "Error getting contents from file (%s)", path)
	}
	return contents, nil
}

func (self *githubService) CodeScanningSummary(repo string) (ScanSummary, error) {
	summary := ScanSummary{}

	var alerts []*github.Alert
	opts := &github.AlertListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		page, resp, err := self.client.CodeScanning.ListAlertsForRepo(context.Background(), self.org, repo, opts)
		if err != nil {
			// Repos without code scanning answer 404, repos we cannot
			// see answer 403. Neither is worth failing a sweep over.
			if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden) {
				self.logger.Debug().Msgf("Code scanning is not available for %s", repo)
				return summary, nil
			}
			return summary, errors.WithMessage(err, "Unable to retrieve codescanning data")
		}
		alerts = append(alerts, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	// Keep the worst severity seen per CVE.
	worst := map[string]Vulnerability{}
	for _, alert := range alerts {
		if alert.GetState() == "fixed" {
			continue
		}
		severity := strings.ToUpper(alert.GetRule().GetSecuritySeverityLevel())
		if severity == "" {
			severity = "UNKNOWN"
		}
		cve := alert.GetRule().GetID()
		if known, ok := worst[cve]; !ok || severityOrder[severity] > severityOrder[known.Severity] {
			worst[cve] = Vulnerability{Cve: cve, Severity: severity, Url: alert.GetHTMLURL()}
		}
	}
	if len(worst) == 0 {
		return summary, nil
	}

	summary.Counts = map[string]int{}
	for _, vulnerability := range worst {
		summary.Counts[vulnerability.Severity]++
		summary.Vulnerabilities = append(summary.Vulnerabilities, vulnerability)
	}
	sort.Slice(summary.Vulnerabilities, func(i, j int) bool {
		a, b := summary.Vulnerabilities[i], summary.Vulnerabilities[j]
		if a.Severity != b.Severity {
			return severityOrder[a.Severity] > severityOrder[b.Severity]
		}
		return a.Cve < b.Cve
	})
	return summary, nil
}

func (self *githubService) ArchiveRepo(name string) error {
	_, _, err := self.client.Repositories.Edit(context.Background(), self.org, name, &github.Repository{Archived: github.Bool(true)})
	if err != nil {
		return errors.WithMessagef(err, "Failed to archive repository %s", name)
	}
	self.logger.Info().Msgf("Repository %s archived successfully", name)
	return nil
}
