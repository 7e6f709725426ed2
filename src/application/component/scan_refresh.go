package component

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/application/service"
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const scanRefreshJob = "hmpps-trivy-discovery"

// ScanRefresh sweeps every component and writes the latest security
// scan results onto its catalogue record: github code scanning alerts
// and, when CircleCI is configured, the newest trivy image scan.
type ScanRefresh struct {
	Logger              zerolog.Logger
	Interval            time.Duration
	ComponentRepository repository.ComponentRepository
	GithubService       service.GithubService
	CircleCIService     service.CircleCIService
	ScheduledJobService service.ScheduledJobService
	JobLogService       service.JobLogService
	SlackService        service.SlackService
}

func (self *ScanRefresh) Start(ctx context.Context) error {
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

func (self *ScanRefresh) sync() {
	run := domain.NewJobRun(scanRefreshJob)
	self.JobLogService.Log(run, "Starting security scan refresh")

	refreshed := self.refresh(run)
	self.JobLogService.Log(run, fmt.Sprintf("Finished security scan refresh: %d components refreshed, %d errors", refreshed, len(run.Errors)))

	if err := self.ScheduledJobService.Report(run, run.Status()); err != nil {
		self.Logger.Err(err).Msgf("Could not report %s run", run.Name)
	}
	if run.Failed() && self.SlackService != nil {
		self.SlackService.Alert(fmt.Sprintf("Job %s failed: %s", run.Name, strings.Join(run.Errors, "; ")))
	}
}

func (self *ScanRefresh) refresh(run *domain.JobRun) (refreshed int) {
	components, err := self.ComponentRepository.GetAll()
	if err != nil {
		run.Fail(fmt.Sprintf("Could not list catalogue components: %s", err))
		return
	}

	for _, component := range components {
		if component.DocumentID == "" {
			self.JobLogService.Log(run, fmt.Sprintf("Skipping component %s without a documentId", component.Name))
			continue
		}

		fields := domain.Record{}
		summary, err := self.GithubService.CodeScanningSummary(component.Repo())
		if err != nil {
			run.Fail(fmt.Sprintf("Could not summarise code scanning for %s: %s", component.Name, err))
		} else {
			fields["codescanning_summary"] = summary
		}

		if self.CircleCIService != nil {
			scan, err := self.CircleCIService.TrivyScan(component.Repo())
			if err != nil {
				run.Fail(fmt.Sprintf("Could not fetch trivy scan for %s: %s", component.Name, err))
			} else if scan != nil {
				fields["trivy_scan_summary"] = scan
				fields["trivy_scan_date"] = time.Now().Format(time.RFC3339)
			}
		}

		if len(fields) == 0 {
			continue
		}
		if err := self.ComponentRepository.Update(component.DocumentID, fields); err != nil {
			run.Fail(fmt.Sprintf("Could not update component %s: %s", component.Name, err))
			continue
		}
		self.JobLogService.Log(run, fmt.Sprintf("Refreshed scan results for %s", component.Name))
		refreshed++
	}
	return
}
