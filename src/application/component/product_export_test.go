package component

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/input-output-hk/varro/src/domain"
	serviceMocks "github.com/input-output-hk/varro/src/mocks/application/service"
	repositoryMocks "github.com/input-output-hk/varro/src/mocks/domain/repository"
)

func buildProductExportMocked(productRepository *repositoryMocks.ProductRepository,
	sharepointService *serviceMocks.SharepointService,
	scheduledJobService *serviceMocks.ScheduledJobService,
	jobLogService *serviceMocks.JobLogService) *ProductExport {
	return &ProductExport{
		Logger:              zerolog.Nop(),
		Interval:            time.Minute,
		ListTitle:           "Products",
		ProductRepository:   productRepository,
		SharepointService:   sharepointService,
		ScheduledJobService: scheduledJobService,
		JobLogService:       jobLogService,
	}
}

func TestProductExportReconcilesList(t *testing.T) {
	t.Parallel()

	// given
	productRepository := &repositoryMocks.ProductRepository{}
	productRepository.On("GetAllDetailed").Return([]domain.Product{
		{DocumentID: "p1", Name: "Book a visit", PID: "DPS001", SlackChannelID: "C1", SlackChannelName: "#book-a-visit"},
		{DocumentID: "p2", Name: "Pathfinder", PID: "DPS002"},
	}, nil)
	sharepointService := &serviceMocks.SharepointService{}
	sharepointService.On("ListItems", "Products", productColumns, "Title").Return(map[string]domain.Record{
		"Pathfinder": {"id": "5", "Title": "Pathfinder", "ProductId": "SPG001"},
		"Retired":    {"id": "9", "Title": "Retired", "ProductId": "DPS999"},
	}, nil)
	sharepointService.On("AddListItems", "Products", []domain.Record{
		{"Title": "Book a visit", "ProductId": "DPS001", "SlackChannelId": "C1", "SlackChannelName": "#book-a-visit"},
	}).Return(nil)
	sharepointService.On("UpdateListItems", "Products", []domain.Record{
		{"id": "5", "Title": "Pathfinder", "ProductId": "DPS002", "SlackChannelId": "", "SlackChannelName": ""},
	}).Return(nil)
	sharepointService.On("DeleteListItems", "Products", []string{"9"}).Return(nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	productExport := buildProductExportMocked(productRepository, sharepointService, nil, jobLogService)
	run := domain.NewJobRun(productExportJob)

	// when
	added, updated, deleted := productExport.reconcile(run)

	// then
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, deleted)
	assert.False(t, run.Failed())
	sharepointService.AssertExpectations(t)
}

func TestProductExportLeavesUnchangedItemsAlone(t *testing.T) {
	t.Parallel()

	// given
	productRepository := &repositoryMocks.ProductRepository{}
	productRepository.On("GetAllDetailed").Return([]domain.Product{
		{DocumentID: "p1", Name: "Pathfinder", PID: "DPS002"},
	}, nil)
	sharepointService := &serviceMocks.SharepointService{}
	sharepointService.On("ListItems", "Products", productColumns, "Title").Return(map[string]domain.Record{
		"Pathfinder": {"id": "5", "Title": "Pathfinder", "ProductId": "DPS002", "SlackChannelId": "", "SlackChannelName": ""},
	}, nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	productExport := buildProductExportMocked(productRepository, sharepointService, nil, jobLogService)
	run := domain.NewJobRun(productExportJob)

	// when
	added, updated, deleted := productExport.reconcile(run)

	// then
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 0, deleted)
	sharepointService.AssertNotCalled(t, "AddListItems", mock.Anything, mock.Anything)
	sharepointService.AssertNotCalled(t, "UpdateListItems", mock.Anything, mock.Anything)
	sharepointService.AssertNotCalled(t, "DeleteListItems", mock.Anything, mock.Anything)
}

func TestProductExportSkipsProductsWithoutName(t *testing.T) {
	t.Parallel()

	// given
	productRepository := &repositoryMocks.ProductRepository{}
	productRepository.On("GetAllDetailed").Return([]domain.Product{{DocumentID: "p1", PID: "DPS003"}}, nil)
	sharepointService := &serviceMocks.SharepointService{}
	sharepointService.On("ListItems", "Products", productColumns, "Title").Return(map[string]domain.Record{}, nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	productExport := buildProductExportMocked(productRepository, sharepointService, nil, jobLogService)
	run := domain.NewJobRun(productExportJob)

	// when
	added, _, _ := productExport.reconcile(run)

	// then
	assert.Equal(t, 0, added)
	assert.False(t, run.Failed())
	sharepointService.AssertNotCalled(t, "AddListItems", mock.Anything, mock.Anything)
}

func TestProductExportFailsRunWhenSharepointUnreachable(t *testing.T) {
	t.Parallel()

	// given
	productRepository := &repositoryMocks.ProductRepository{}
	productRepository.On("GetAllDetailed").Return([]domain.Product{{DocumentID: "p1", Name: "Pathfinder"}}, nil)
	sharepointService := &serviceMocks.SharepointService{}
	sharepointService.On("ListItems", "Products", productColumns, "Title").Return(nil, errors.New("access denied"))
	scheduledJobService := &serviceMocks.ScheduledJobService{}
	scheduledJobService.On("Report", mock.Anything, domain.JobFailed).Return(nil)
	jobLogService := &serviceMocks.JobLogService{}
	jobLogService.On("Log", mock.Anything, mock.Anything).Return()
	productExport := buildProductExportMocked(productRepository, sharepointService, scheduledJobService, jobLogService)

	// when
	productExport.sync()

	// then
	scheduledJobService.AssertExpectations(t)
}
