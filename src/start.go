package varro

import (
	"context"
	"time"

	"cirello.io/oversight"
	"github.com/grafana/loki/clients/pkg/promtail/api"
	promtailClient "github.com/grafana/loki/clients/pkg/promtail/client"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/application/component"
	"github.com/input-output-hk/varro/src/application/component/web"
	"github.com/input-output-hk/varro/src/application/service"
	"github.com/input-output-hk/varro/src/config"
	"github.com/input-output-hk/varro/src/infrastructure/strapi"
)

//go:generate mockery --all --keeptree

type StartCmd struct {
	Components []string `arg:"positional,env:VARRO_COMPONENTS" help:"any of: web, teamsync, productexport, scanrefresh"`

	CatalogueUrl      string        `arg:"--catalogue-url,env:SERVICE_CATALOGUE_API_ENDPOINT" default:"http://127.0.0.1:1337"`
	CatalogueFilter   string        `arg:"--catalogue-filter,env:SERVICE_CATALOGUE_FILTER" help:"query fragment applied to component listings"`
	CatalogueTimeout  time.Duration `arg:"--catalogue-timeout" default:"10s"`
	CatalogueRetries  int           `arg:"--catalogue-retries" default:"3"`
	CataloguePageSize int           `arg:"--catalogue-page-size" default:"10"`

	WebListen string `arg:"--web-listen,env:VARRO_WEB_LISTEN" default:":8080"`

	SyncEvery      time.Duration `arg:"--sync-every,env:VARRO_SYNC_EVERY" default:"6h"`
	SharepointList string        `arg:"--sharepoint-list" default:"Products"`

	LokiAddr string `arg:"--loki-addr,env:LOKI_ADDR" help:"ship job run logs to this Loki instance"`
}

func (cmd StartCmd) Run(logger *zerolog.Logger) error {
	instance, err := NewInstance(cmd, logger)
	if err != nil {
		return err
	}
	defer instance.Close()
	return instance.Run(context.Background())
}

type InstanceOpts interface {
	NewStore(*zerolog.Logger) *strapi.Store
	NewPromtailClient(*zerolog.Logger) (promtailClient.Client, error)
	GetComponentOpts() InstanceComponentsOpts
	GetSyncInterval() time.Duration
}

type InstanceComponentsOpts struct {
	Web           *InstanceWebComponentOpts
	TeamSync      bool
	ProductExport *InstanceProductExportOpts
	ScanRefresh   bool
}

type InstanceWebComponentOpts struct {
	ListenAddr string
}

type InstanceProductExportOpts struct {
	ListTitle string
}

func (cmd StartCmd) NewStore(logger *zerolog.Logger) *strapi.Store {
	client := strapi.NewClient(strapi.Config{
		BaseURL:    cmd.CatalogueUrl,
		Token:      config.GetenvStr("SERVICE_CATALOGUE_API_KEY"),
		Timeout:    cmd.CatalogueTimeout,
		MaxRetries: cmd.CatalogueRetries,
		PageSize:   cmd.CataloguePageSize,
		Filter:     cmd.CatalogueFilter,
	}, logger)
	return strapi.NewStore(client, logger)
}

func (cmd StartCmd) NewPromtailClient(logger *zerolog.Logger) (promtailClient.Client, error) {
	if cmd.LokiAddr == "" {
		return nil, nil
	}
	return config.NewPromtailClient(cmd.LokiAddr, logger)
}

func (cmd StartCmd) GetComponentOpts() InstanceComponentsOpts {
	start := InstanceComponentsOpts{}

	webOpts := InstanceWebComponentOpts{ListenAddr: cmd.WebListen}
	productExportOpts := InstanceProductExportOpts{ListTitle: cmd.SharepointList}

	// If none are given then start all,
	// otherwise start only those that are given.
	for _, component := range cmd.Components {
		switch component {
		case "web":
			start.Web = &webOpts
		case "teamsync":
			start.TeamSync = true
		case "productexport":
			start.ProductExport = &productExportOpts
		case "scanrefresh":
			start.ScanRefresh = true
		default:
			panic("Unknown component: " + component)
		}
	}
	if start.Web == nil && !start.TeamSync && start.ProductExport == nil && !start.ScanRefresh {
		start.Web = &webOpts
		start.TeamSync = true
		start.ProductExport = &productExportOpts
		start.ScanRefresh = true
	}

	return start
}

func (cmd StartCmd) GetSyncInterval() time.Duration {
	if cmd.SyncEvery <= 0 {
		return 6 * time.Hour
	}
	return cmd.SyncEvery
}

func NewInstance(opts InstanceOpts, logger *zerolog.Logger) (Instance, error) {
	instance := Instance{logger: logger}

	instance.store = opts.NewStore(logger)
	if !instance.store.Connect() {
		logger.Warn().Msg("Could not reach the service catalogue, continuing anyway")
	}

	if client, err := opts.NewPromtailClient(logger); err != nil {
		logger.Fatal().Err(err).Send()
		return instance, err
	} else {
		instance.promtailClient = client
	}

	componentRepository := strapi.NewComponentRepository(instance.store)
	teamRepository := strapi.NewTeamRepository(instance.store)
	productRepository := strapi.NewProductRepository(instance.store)

	var entries chan<- api.Entry
	if instance.promtailClient != nil {
		entries = instance.promtailClient.Chan()
	}
	jobLogService := service.NewJobLogService(entries, logger)
	scheduledJobService := service.NewScheduledJobService(instance.store, logger)

	var slackService service.SlackService
	if cfg := config.SlackConfigFromEnv(); cfg.Enabled() {
		// Without an explicit alert channel, ask the cluster's
		// alertmanager which channel handles our severity label.
		if cfg.AlertChannel == "" {
			if alertmanagerCfg := config.AlertmanagerConfigFromEnv(); alertmanagerCfg.SeverityLabel != "" {
				if channel, err := service.NewAlertmanagerService(alertmanagerCfg, logger).ChannelBySeverity(alertmanagerCfg.SeverityLabel); err != nil {
					logger.Warn().Err(err).Msg("Could not resolve an alert channel from alertmanager")
				} else {
					cfg.AlertChannel = channel
				}
			}
		}
		slackService = service.NewSlackService(cfg, logger)
		if !slackService.Connect() {
			logger.Warn().Msg("Could not authenticate with Slack, alerts may be lost")
		}
	}

	start := opts.GetComponentOpts()

	var githubService service.GithubService
	if start.TeamSync || start.ScanRefresh {
		cfg, err := config.GithubConfigFromEnv()
		if err != nil {
			return instance, err
		}
		if !cfg.Enabled() {
			return instance, errors.New("Team sync and scan refresh need github credentials")
		}
		if githubService, err = service.NewGithubService(cfg, logger); err != nil {
			return instance, err
		}
		if !githubService.Connect() {
			logger.Warn().Msg("Could not reach the github API")
		}
	}

	if start.Web != nil {
		instance.Web = &web.Web{
			Listen: start.Web.ListenAddr,
			Logger: logger.With().Str("component", "Web").Logger(),
			Host:   web.Hostname(),
		}
	}

	if start.TeamSync {
		instance.TeamSync = &component.TeamSync{
			Logger:              logger.With().Str("component", "TeamSync").Logger(),
			Interval:            opts.GetSyncInterval(),
			ComponentRepository: componentRepository,
			TeamRepository:      teamRepository,
			GithubService:       githubService,
			ScheduledJobService: scheduledJobService,
			JobLogService:       jobLogService,
			SlackService:        slackService,
		}
	}

	if start.ProductExport != nil {
		cfg := config.SharepointConfigFromEnv()
		if !cfg.Enabled() {
			return instance, errors.New("Product export needs sharepoint credentials")
		}
		sharepointService, err := service.NewSharepointService(cfg, logger)
		if err != nil {
			return instance, err
		}
		instance.ProductExport = &component.ProductExport{
			Logger:              logger.With().Str("component", "ProductExport").Logger(),
			Interval:            opts.GetSyncInterval(),
			ListTitle:           start.ProductExport.ListTitle,
			ProductRepository:   productRepository,
			SharepointService:   sharepointService,
			ScheduledJobService: scheduledJobService,
			JobLogService:       jobLogService,
			SlackService:        slackService,
		}
	}

	if start.ScanRefresh {
		var circleCIService service.CircleCIService
		if cfg := config.CircleCIConfigFromEnv(); cfg.Enabled() {
			circleCIService = service.NewCircleCIService(cfg, logger)
			if !circleCIService.Connect() {
				logger.Warn().Msg("Could not reach the CircleCI API")
			}
		} else {
			logger.Warn().Msg("CircleCI is not configured, trivy scans will be skipped")
		}
		instance.ScanRefresh = &component.ScanRefresh{
			Logger:              logger.With().Str("component", "ScanRefresh").Logger(),
			Interval:            opts.GetSyncInterval(),
			ComponentRepository: componentRepository,
			GithubService:       githubService,
			CircleCIService:     circleCIService,
			ScheduledJobService: scheduledJobService,
			JobLogService:       jobLogService,
			SlackService:        slackService,
		}
	}

	return instance, nil
}

type Instance struct {
	Web           *web.Web
	TeamSync      *component.TeamSync
	ProductExport *component.ProductExport
	ScanRefresh   *component.ScanRefresh

	logger         *zerolog.Logger
	store          *strapi.Store
	promtailClient promtailClient.Client
}

func (self Instance) Close() {
	if self.promtailClient != nil {
		self.promtailClient.Stop()
	}
}

func (self Instance) Run(ctx context.Context) error {
	self.logger.Info().Msg("Starting components")

	supervisor := oversight.New(
		oversight.WithLogger(&config.SupervisorLogger{Logger: self.logger}),
		oversight.WithSpecification(
			10,                    // number of restarts
			1*time.Minute,         // within this time period
			oversight.OneForOne(), // restart every task on its own
		),
	)

	if self.Web != nil {
		if err := supervisor.Add(self.Web.Start); err != nil {
			return err
		}
	}

	if self.TeamSync != nil {
		if err := supervisor.Add(self.TeamSync.Start); err != nil {
			return err
		}
	}

	if self.ProductExport != nil {
		if err := supervisor.Add(self.ProductExport.Start); err != nil {
			return err
		}
	}

	if self.ScanRefresh != nil {
		if err := supervisor.Add(self.ScanRefresh.Start); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := supervisor.Start(ctx); err != nil {
		return errors.WithMessage(err, "While starting supervisor")
	}

	<-ctx.Done()
	return nil
}
