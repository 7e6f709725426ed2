package component

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/input-output-hk/varro/src/application/service"
	"github.com/input-output-hk/varro/src/domain"
	serviceMocks "github.com/input-output-hk/varro/src/mocks/application/service"
	repositoryMocks "github.com/input-output-hk/varro/src/mocks/domain/repository"
)

func buildScanRefreshMocked(componentRepository *repositoryMocks.ComponentRepository,
	githubService *serviceMocks.GithubService,
	scheduledJobService *serviceMocks.ScheduledJobService,
	jobLogService *serviceMocks.JobLogService) *ScanRefresh {
	return &ScanRefresh{
		Logger:              zerolog.Nop(),
		Interval:            time.Minute,
		ComponentRepository: componentRepository,
		GithubService:       githubService,
		ScheduledJobService: scheduledJobService,
		JobLogService:       jobLogService,
	}
}

func TestScanRefreshUpdatesComponents(t *testing.T) {
	t.Parallel()

	// given
	componentRepository := &repositoryMocks.ComponentRepository{}
	componentRepository.On("GetAll").Return([]domain.Component{
		{DocumentID: "c1", Name: "hmpps-auth"},
		{DocumentID: "c2", Name: "book-a-visit", GithubRepo: "hmpps-book-a-visit"},
	}, nil)
	githubService := &serviceMocks.GithubService{}
	githubService.On("CodeScanningSummary", "hmpps-auth").Return(service.ScanSummary{
		Counts:          map[string]int{"HIGH": 1},
		Vulnerabilities: []service.Vulnerability{{Cve: "CVE-2024-1111", Severity: "HIGH"}},
	}, nil)
	githubService.On("CodeScanningSummary", "hmpps-book-a-visit").Return(service.ScanSummary{}, nil)
	circleCIService := &serviceMocks.CircleCIService{}
	circleCIService.On("TrivyScan", "hmpps-auth").Return(map[string]any{"high": float64(2)}, nil)
	circleCIService.On("TrivyScan", "hmpps-book-a-visit").Return(nil, nil)
	componentRepository.On("Update", "c1", mock.MatchedBy(func(fields domain.Record) bool {
		return fields.Has("codescanning_summary") && fields.Has("trivy_scan_summary") && fields.Has("trivy_scan_date")
	})).Return(nil)
	componentRepository.On("Update", "c2", mock.MatchedBy(func(fields domain.Record) bool {
		return fields.Has("codescanning_summary") && !fields.Has("trivy_scan_summary")
	})).Return(nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	scanRefresh := buildScanRefreshMocked(componentRepository, githubService, nil, jobLogService)
	scanRefresh.CircleCIService = circleCIService
	run := domain.NewJobRun(scanRefreshJob)

	// when
	refreshed := scanRefresh.refresh(run)

	// then
	assert.Equal(t, 2, refreshed)
	assert.False(t, run.Failed())
	componentRepository.AssertExpectations(t)
}

func TestScanRefreshWithoutCircleCI(t *testing.T) {
	t.Parallel()

	// given
	componentRepository := &repositoryMocks.ComponentRepository{}
	componentRepository.On("GetAll").Return([]domain.Component{{DocumentID: "c1", Name: "hmpps-auth"}}, nil)
	githubService := &serviceMocks.GithubService{}
	githubService.On("CodeScanningSummary", "hmpps-auth").Return(service.ScanSummary{}, nil)
	componentRepository.On("Update", "c1", mock.MatchedBy(func(fields domain.Record) bool {
		return fields.Has("codescanning_summary") && !fields.Has("trivy_scan_summary")
	})).Return(nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	scanRefresh := buildScanRefreshMocked(componentRepository, githubService, nil, jobLogService)
	run := domain.NewJobRun(scanRefreshJob)

	// when
	refreshed := scanRefresh.refresh(run)

	// then
	assert.Equal(t, 1, refreshed)
	componentRepository.AssertExpectations(t)
}

func TestScanRefreshKeepsGoingAfterErrors(t *testing.T) {
	t.Parallel()

	// given
	componentRepository := &repositoryMocks.ComponentRepository{}
	componentRepository.On("GetAll").Return([]domain.Component{
		{DocumentID: "c1", Name: "hmpps-auth"},
		{DocumentID: "c2", Name: "hmpps-prisoner-search"},
	}, nil)
	githubService := &serviceMocks.GithubService{}
	githubService.On("CodeScanningSummary", "hmpps-auth").Return(service.ScanSummary{}, errors.New("rate limited"))
	githubService.On("CodeScanningSummary", "hmpps-prisoner-search").Return(service.ScanSummary{}, nil)
	componentRepository.On("Update", "c2", mock.Anything).Return(nil)
	scheduledJobService := &serviceMocks.ScheduledJobService{}
	scheduledJobService.On("Report", mock.Anything, domain.JobFailed).Return(nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	scanRefresh := buildScanRefreshMocked(componentRepository, githubService, scheduledJobService, jobLogService)

	// when
	scanRefresh.sync()

	// then
	componentRepository.AssertExpectations(t)
	componentRepository.AssertNotCalled(t, "Update", "c1", mock.Anything)
	scheduledJobService.AssertExpectations(t)
}
