package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/input-output-hk/varro/src/config"
	"github.com/input-output-hk/varro/src/domain"
)

type SharepointService interface {
	// Connect resolves the configured site, which exercises both the
	// credentials and the site lookup.
	Connect() bool

	// ListItems returns every item of a list keyed by its title
	// field. Each record carries the item id and the requested
	// columns. Items without a title are skipped.
	ListItems(listTitle string, fields []string, titleField string) (map[string]domain.Record, error)

	// AddListItems creates one list item per record.
	AddListItems(listTitle string, items []domain.Record) error

	// UpdateListItems patches the columns of existing items. Each
	// record must carry the item id under "id".
	UpdateListItems(listTitle string, items []domain.Record) error

	DeleteListItems(listTitle string, ids []string) error

	// UploadFile puts a document into a folder of a document
	// library.
	UploadFile(driveName, folderPath, fileName string, contents []byte) error
}

// sharepointService talks to SharePoint through the Microsoft Graph
// REST API with an app-only client credentials token. Graph throttles
// aggressively, so every request goes through a rate limiter.
type sharepointService struct {
	logger   zerolog.Logger
	graphUrl string
	siteHost string
	siteName string
	client   *http.Client
	limiter  *rate.Limiter

	mutex  sync.Mutex
	siteId string
}

func NewSharepointService(cfg config.SharepointConfig, logger *zerolog.Logger) (SharepointService, error) {
	siteUrl, err := url.Parse(cfg.SiteURL)
	if err != nil {
		return nil, errors.WithMessagef(err, "Invalid site URL %q", cfg.SiteURL)
	}

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientId,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantId),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}

	return &sharepointService{
		logger:   logger.With().Str("component", "SharepointService").Logger(),
		graphUrl: "https://graph.microsoft.com/v1.0",
		siteHost: siteUrl.Host,
		siteName: cfg.SiteName,
		client:   creds.Client(context.Background()),
		limiter:  rate.NewLimiter(rate.Limit(10), 5),
	}, nil
}

func (self *sharepointService) Connect() bool {
	if _, err := self.site(); err != nil {
		self.logger.Error().Err(err).Msg("Unable to connect to Microsoft Graph")
		return false
	}
	return true
}

// site resolves and caches the Graph id of the configured site.
func (self *sharepointService) site() (string, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.siteId != "" {
		return self.siteId, nil
	}

	var site struct {
		Id   string `json:"id"`
		Name string `json:"name"`
	}
	if err := self.get(fmt.Sprintf("%s/sites/%s:/sites/%s", self.graphUrl, self.siteHost, self.siteName), &site); err != nil {
		return "", errors.WithMessagef(err, "Failed to get site %q", self.siteName)
	}
	if site.Id == "" {
		return "", errors.Errorf("Site %q not found", self.siteName)
	}

	self.siteId = site.Id
	self.logger.Info().Msgf("Successfully accessed site: %s", site.Name)
	return self.siteId, nil
}

// list resolves a list by display name within the configured site.
func (self *sharepointService) list(title string) (siteId, listId string, err error) {
	siteId, err = self.site()
	if err != nil {
		return
	}

	var lists struct {
		Value []struct {
			Id string `json:"id"`
		} `json:"value"`
	}
	query := url.Values{"$filter": {fmt.Sprintf("displayName eq '%s'", title)}}
	if err = self.get(fmt.Sprintf("%s/sites/%s/lists?%s", self.graphUrl, siteId, query.Encode()), &lists); err != nil {
		err = errors.WithMessagef(err, "Failed to get list %q", title)
		return
	}
	if len(lists.Value) == 0 {
		err = errors.Errorf("Unable to find Sharepoint list %q - please make sure it exists and is accessible", title)
		return
	}

	listId = lists.Value[0].Id
	return
}

func (self *sharepointService) ListItems(listTitle string, fields []string, titleField string) (map[string]domain.Record, error) {
	siteId, listId, err := self.list(listTitle)
	if err != nil {
		return nil, err
	}

	items := map[string]domain.Record{}
	next := fmt.Sprintf("%s/sites/%s/lists/%s/items?expand=fields&%s", self.graphUrl, siteId, listId, url.Values{"$top": {"200"}}.Encode())
	for next != "" {
		var page struct {
			Value []struct {
				Id     string         `json:"id"`
				Fields map[string]any `json:"fields"`
			} `json:"value"`
			NextLink string `json:"@odata.nextLink"`
		}
		if err := self.get(next, &page); err != nil {
			return nil, errors.WithMessagef(err, "Failed to get items of %q", listTitle)
		}

		for _, item := range page.Value {
			title, _ := item.Fields[titleField].(string)
			if title == "" || item.Id == "" {
				continue
			}
			record := domain.Record{"id": item.Id}
			for _, field := range fields {
				record[field] = item.Fields[field]
			}
			items[title] = record
		}
		next = page.NextLink
	}

	self.logger.Info().Msgf("Retrieved %d items from %q", len(items), listTitle)
	return items, nil
}

func (self *sharepointService) AddListItems(listTitle string, items []domain.Record) error {
	siteId, listId, err := self.list(listTitle)
	if err != nil {
		return err
	}

	self.logger.Info().Msgf("Adding %d items to %q", len(items), listTitle)
	for _, item := range items {
		if err := self.send(http.MethodPost, fmt.Sprintf("%s/sites/%s/lists/%s/items", self.graphUrl, siteId, listId), map[string]any{"fields": item}, nil); err != nil {
			return errors.WithMessagef(err, "Failed to add items to %q", listTitle)
		}
	}
	return nil
}

func (self *sharepointService) UpdateListItems(listTitle string, items []domain.Record) error {
	siteId, listId, err := self.list(listTitle)
	if err != nil {
		return err
	}

	self.logger.Info().Msgf("Updating %d items in %q", len(items), listTitle)
	for _, item := range items {
		id, _ := item["id"].(string)
		if id == "" {
			continue
		}
		fields := domain.Record{}
		for k, v := range item {
			if k != "id" {
				fields[k] = v
			}
		}
		if err := self.send(http.MethodPatch, fmt.Sprintf("%s/sites/%s/lists/%s/items/%s/fields", self.graphUrl, siteId, listId, id), fields, nil); err != nil {
			return errors.WithMessagef(err, "Failed to update items in %q", listTitle)
		}
	}
	return nil
}

func (self *sharepointService) DeleteListItems(listTitle string, ids []string) error {
	siteId, listId, err := self.list(listTitle)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := self.request(http.MethodDelete, fmt.Sprintf("%s/sites/%s/lists/%s/items/%s", self.graphUrl, siteId, listId, id), "", nil, nil); err != nil {
			return errors.WithMessagef(err, "Failed to delete items from %q", listTitle)
		}
	}
	return nil
}

func (self *sharepointService) UploadFile(driveName, folderPath, fileName string, contents []byte) error {
	siteId, err := self.site()
	if err != nil {
		return err
	}

	var drives struct {
		Value []struct {
			Id   string `json:"id"`
			Name string `json:"name"`
		} `json:"value"`
	}
	if err := self.get(fmt.Sprintf("%s/sites/%s/drives", self.graphUrl, siteId), &drives); err != nil {
		return errors.WithMessage(err, "Failed to get document libraries")
	}

	driveId := ""
	for _, drive := range drives.Value {
		if drive.Name == driveName {
			driveId = drive.Id
			break
		}
	}
	if driveId == "" {
		return errors.Errorf("Document library %q not found", driveName)
	}

	path := fileName
	if folderPath != "" {
		path = folderPath + "/" + fileName
	}
	if err := self.request(http.MethodPut, fmt.Sprintf("%s/drives/%s/root:/%s:/content", self.graphUrl, driveId, path), "application/octet-stream", bytes.NewReader(contents), nil); err != nil {
		return errors.WithMessagef(err, "Failed to upload %q to %q", fileName, driveName)
	}

	self.logger.Info().Msgf("Successfully uploaded %q to %s/%s", fileName, driveName, folderPath)
	return nil
}

func (self *sharepointService) get(url string, into any) error {
	return self.request(http.MethodGet, url, "", nil, into)
}

func (self *sharepointService) send(method, url string, body, into any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return self.request(method, url, "application/json", bytes.NewReader(encoded), into)
}

func (self *sharepointService) request(method, url, contentType string, body io.Reader, into any) error {
	if err := self.limiter.Wait(context.Background()); err != nil {
		return err
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := self.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("Unexpected status %d from %s", resp.StatusCode, url)
	}
	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
