package service

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
	"github.com/input-output-hk/varro/src/infrastructure/strapi"
)

type ScheduledJobService interface {
	// Report records the outcome of a job run on its scheduled-jobs
	// record. The record must be provisioned out of band: a missing
	// record fails the report, it is never created here.
	Report(run *domain.JobRun, status string) error
}

type scheduledJobService struct {
	logger                 zerolog.Logger
	scheduledJobRepository repository.ScheduledJobRepository
}

func NewScheduledJobService(store *strapi.Store, logger *zerolog.Logger) ScheduledJobService {
	return &scheduledJobService{
		logger:                 logger.With().Str("component", "ScheduledJobService").Logger(),
		scheduledJobRepository: strapi.NewScheduledJobRepository(store),
	}
}

func (self *scheduledJobService) Report(run *domain.JobRun, status string) error {
	name := "unknown"
	if run != nil && run.Name != "" {
		name = run.Name
	}
	self.logger.Trace().Str("job", name).Str("status", status).Msg("Reporting scheduled job outcome")

	job, err := self.scheduledJobRepository.GetByName(name)
	if err != nil {
		return errors.WithMessagef(err, "Could not select scheduled job %q", name)
	}
	if job == nil {
		self.logger.Error().Msgf("Job %s not found in the service catalogue", name)
		return errors.Errorf("Job %q not found in the service catalogue", name)
	}
	if job.DocumentID == "" {
		self.logger.Error().Msgf("Job %s has no documentId", name)
		return errors.Errorf("Job %q has no documentId", name)
	}

	errorDetails := []string{}
	if run != nil && run.Errors != nil {
		errorDetails = run.Errors
	}
	fields := domain.Record{
		"last_scheduled_run": time.Now().Format(time.RFC3339),
		"result":             status,
		"error_details":      errorDetails,
	}
	if status == domain.JobSucceeded {
		fields["last_successful_run"] = time.Now().Format(time.RFC3339)
	}

	if err := self.scheduledJobRepository.Update(job.DocumentID, fields); err != nil {
		return errors.WithMessagef(err, "Could not update scheduled job %q", name)
	}
	self.logger.Info().Msgf("Reported %s run of job %s", status, name)
	return nil
}
