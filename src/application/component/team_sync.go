package component

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/input-output-hk/varro/src/application/service"
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const teamSyncJob = "hmpps-github-teams-discovery"

// TeamSync keeps the github-teams collection aligned with the teams
// that components reference and with what the github org actually has.
type TeamSync struct {
	Logger              zerolog.Logger
	Interval            time.Duration
	ComponentRepository repository.ComponentRepository
	TeamRepository      repository.TeamRepository
	GithubService       service.GithubService
	ScheduledJobService service.ScheduledJobService
	JobLogService       service.JobLogService
	SlackService        service.SlackService
}

func (self *TeamSync) Start(ctx context.Context) error {
	self.Logger.Info().Msg("Starting")

	ticker := time.NewTicker(self.Interval)
	defer ticker.Stop()
	for {
		self.sync()
		select {
		case <-ctx.Done():
			self.Logger.Debug().Msg("context was cancelled")
			return nil
		case <-ticker.C:
		}
	}
}

func (self *TeamSync) sync() {
	run := domain.NewJobRun(teamSyncJob)
	self.JobLogService.Log(run, "Starting github teams discovery")

	added, updated := self.reconcile(run)
	self.JobLogService.Log(run, fmt.Sprintf("Finished github teams discovery: %d added, %d updated, %d errors", added, updated, len(run.Errors)))

	if err := self.ScheduledJobService.Report(run, run.Status()); err != nil {
		self.Logger.Err(err).Msgf("Could not report %s run", run.Name)
	}
	if run.Failed() && self.SlackService != nil {
		self.SlackService.Alert(fmt.Sprintf("Job %s failed: %s", run.Name, strings.Join(run.Errors, "; ")))
	}
}

func (self *TeamSync) reconcile(run *domain.JobRun) (added, updated int) {
	refs, err := self.ComponentRepository.GetAllTeamRefs()
	if err != nil {
		run.Fail(fmt.Sprintf("Could not collect team references: %s", err))
		return
	}
	orgTeams, err := self.GithubService.OrgTeams()
	if err != nil {
		run.Fail(fmt.Sprintf("Could not list github org teams: %s", err))
		return
	}
	known, err := self.TeamRepository.GetAll()
	if err != nil {
		run.Fail(fmt.Sprintf("Could not list catalogue teams: %s", err))
		return
	}

	byName := map[string]domain.Team{}
	for _, team := range orgTeams {
		byName[team.Name] = team
	}
	catalogued := map[string]struct{}{}
	for _, team := range known {
		catalogued[team.Name] = struct{}{}
	}

	for _, ref := range refs {
		org, ok := byName[ref]
		if !ok {
			self.JobLogService.Log(run, fmt.Sprintf("Team %s is referenced by a component but does not exist in github", ref))
			continue
		}
		if _, ok := catalogued[ref]; ok {
			continue
		}
		if _, err := self.TeamRepository.Add(org); err != nil {
			run.Fail(fmt.Sprintf("Could not add team %s: %s", ref, err))
			continue
		}
		self.JobLogService.Log(run, fmt.Sprintf("Added team %s", ref))
		added++
	}

	for _, team := range known {
		org, ok := byName[team.Name]
		if !ok || !teamDrifted(team, org) {
			continue
		}
		merged := team
		merged.TeamID = org.TeamID
		merged.Parent = org.Parent
		merged.Description = org.Description
		merged.Members = org.Members
		if err := self.TeamRepository.Update(merged); err != nil {
			run.Fail(fmt.Sprintf("Could not update team %s: %s", team.Name, err))
			continue
		}
		self.JobLogService.Log(run, fmt.Sprintf("Updated team %s", team.Name))
		updated++
	}
	return
}

func teamDrifted(catalogued, org domain.Team) bool {
	return catalogued.TeamID != org.TeamID ||
		catalogued.Parent != org.Parent ||
		catalogued.Description != org.Description ||
		!slices.Equal(catalogued.Members, org.Members)
}
