package component

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/input-output-hk/varro/src/application/service"
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const productExportJob = "hmpps-sharepoint-discovery"

// productColumns are the Sharepoint list columns the export owns.
// Title doubles as the list item key.
var productColumns = []string{"Title", "ProductId", "SlackChannelId", "SlackChannelName"}

// ProductExport mirrors the products collection into a Sharepoint list
// so that reporting users get a browsable copy without catalogue access.
type ProductExport struct {
	Logger              zerolog.Logger
	Interval            time.Duration
	ListTitle           string
	ProductRepository   repository.ProductRepository
	SharepointService   service.SharepointService
	ScheduledJobService service.ScheduledJobService
	JobLogService       service.JobLogService
	SlackService        service.SlackService
}

func (self *ProductExport) Start(ctx context.Context) error {
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

func (self *ProductExport) sync() {
	run := domain.NewJobRun(productExportJob)
	self.JobLogService.Log(run, fmt.Sprintf("Starting product export to Sharepoint list %s", self.ListTitle))

	added, updated, deleted := self.reconcile(run)
	self.JobLogService.Log(run, fmt.Sprintf("Finished product export: %d added, %d updated, %d deleted, %d errors", added, updated, deleted, len(run.Errors)))

	if err := self.ScheduledJobService.Report(run, run.Status()); err != nil {
		self.Logger.Err(err).Msgf("Could not report %s run", run.Name)
	}
	if run.Failed() && self.SlackService != nil {
		self.SlackService.Alert(fmt.Sprintf("Job %s failed: %s", run.Name, strings.Join(run.Errors, "; ")))
	}
}

func (self *ProductExport) reconcile(run *domain.JobRun) (added, updated, deleted int) {
	products, err := self.ProductRepository.GetAllDetailed()
	if err != nil {
		run.Fail(fmt.Sprintf("Could not list catalogue products: %s", err))
		return
	}
	existing, err := self.SharepointService.ListItems(self.ListTitle, productColumns, "Title")
	if err != nil {
		run.Fail(fmt.Sprintf("Could not list Sharepoint items: %s", err))
		return
	}

	desired := map[string]domain.Record{}
	for _, product := range products {
		if product.Name == "" {
			self.JobLogService.Log(run, fmt.Sprintf("Skipping product %s without a name", product.PID))
			continue
		}
		desired[product.Name] = domain.Record{
			"Title":            product.Name,
			"ProductId":        product.PID,
			"SlackChannelId":   product.SlackChannelID,
			"SlackChannelName": product.SlackChannelName,
		}
	}

	toAdd := []domain.Record{}
	toUpdate := []domain.Record{}
	titles := maps.Keys(desired)
	slices.Sort(titles)
	for _, title := range titles {
		item, ok := existing[title]
		if !ok {
			toAdd = append(toAdd, desired[title])
			continue
		}
		if itemDrifted(item, desired[title]) {
			patch := domain.Record{"id": item.Str("id")}
			for key, value := range desired[title] {
				patch[key] = value
			}
			toUpdate = append(toUpdate, patch)
		}
	}
	toDelete := []string{}
	stale := maps.Keys(existing)
	slices.Sort(stale)
	for _, title := range stale {
		if _, ok := desired[title]; !ok {
			toDelete = append(toDelete, existing[title].Str("id"))
		}
	}

	if len(toAdd) > 0 {
		if err := self.SharepointService.AddListItems(self.ListTitle, toAdd); err != nil {
			run.Fail(fmt.Sprintf("Could not add Sharepoint items: %s", err))
		} else {
			added = len(toAdd)
		}
	}
	if len(toUpdate) > 0 {
		if err := self.SharepointService.UpdateListItems(self.ListTitle, toUpdate); err != nil {
			run.Fail(fmt.Sprintf("Could not update Sharepoint items: %s", err))
		} else {
			updated = len(toUpdate)
		}
	}
	if len(toDelete) > 0 {
		if err := self.SharepointService.DeleteListItems(self.ListTitle, toDelete); err != nil {
			run.Fail(fmt.Sprintf("Could not delete Sharepoint items: %s", err))
		} else {
			deleted = len(toDelete)
		}
	}
	return
}

func itemDrifted(item, desired domain.Record) bool {
	for _, column := range productColumns {
		if item.Str(column) != desired.Str(column) {
			return true
		}
	}
	return false
}
