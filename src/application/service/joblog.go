package service

import (
	"time"

	"github.com/grafana/loki/clients/pkg/promtail/api"
	"github.com/grafana/loki/pkg/logproto"
	"github.com/prometheus/common/model"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/domain"
)

type JobLogService interface {
	// Log ships one line of job run output to Loki, labelled with
	// the job name and run id. Without a sink the line only reaches
	// the local logger.
	Log(run *domain.JobRun, line string)
}

type jobLogService struct {
	logger  zerolog.Logger
	entries chan<- api.Entry
}

// NewJobLogService wraps the promtail entry channel. A nil channel is
// fine and turns shipping off.
func NewJobLogService(entries chan<- api.Entry, logger *zerolog.Logger) JobLogService {
	return &jobLogService{
		logger:  logger.With().Str("component", "JobLogService").Logger(),
		entries: entries,
	}
}

func (self *jobLogService) Log(run *domain.JobRun, line string) {
	self.logger.Info().Str("job", run.Name).Str("run", run.RunID.String()).Msg(line)
	if self.entries == nil {
		return
	}
	self.entries <- api.Entry{
		Labels: model.LabelSet{
			"app": "varro",
			"job": model.LabelValue(run.Name),
			"run": model.LabelValue(run.RunID.String()),
		},
		Entry: logproto.Entry{
			Timestamp: time.Now(),
			Line:      line,
		},
	}
}
