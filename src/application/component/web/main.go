package web

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/domain"
)

// Web serves the probe endpoints the cluster relies on and the
// metrics scrape target.
type Web struct {
	Listen string
	Logger zerolog.Logger
	Host   string
}

func (self *Web) Start(ctx context.Context) error {
	self.Logger.Info().Str("listen", self.Listen).Msg("Starting")

	server := &http.Server{Addr: self.Listen, Handler: self.router()}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			self.Logger.Err(err).Msgf("Failed to start web server on %s", self.Listen)
		}
	}()

	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		self.Logger.Err(err).Msg("Failed to stop web server")
	}

	return nil
}

func (self *Web) router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.NotFoundHandler = http.HandlerFunc(self.NotFound)

	router.HandleFunc("/health", self.HealthGet).Methods(http.MethodGet)
	router.HandleFunc("/info", self.InfoGet).Methods(http.MethodGet)
	router.HandleFunc("/ping", self.PingGet).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func (self *Web) HealthGet(w http.ResponseWriter, req *http.Request) {
	self.json(w, http.StatusOK, map[string]any{
		"status":  "UP",
		"service": self.Host,
	})
}

func (self *Web) InfoGet(w http.ResponseWriter, req *http.Request) {
	info := struct {
		Build struct {
			Version string `json:"version"`
			Name    string `json:"name"`
		} `json:"build"`
		Uptime      int64  `json:"uptime"`
		Environment string `json:"environment,omitempty"`
		ProductId   string `json:"productId,omitempty"`
	}{
		Uptime:      int64(domain.Build.Uptime().Seconds()),
		Environment: domain.Build.Environment,
		ProductId:   domain.Build.Product,
	}
	info.Build.Version = domain.Build.Version
	info.Build.Name = self.Host

	self.json(w, http.StatusOK, info)
}

// PingGet answers the liveness and readiness probes.
func (self *Web) PingGet(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}

func (self *Web) NotFound(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not found."))
}

func (self *Web) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		self.Logger.Err(err).Msg("Failed to encode response")
	}
}

// Hostname reports the service name: the pod name without its replica
// set and pod suffixes.
func Hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "varro"
	}
	return serviceName(host)
}

func serviceName(host string) string {
	if parts := strings.Split(host, "-"); len(parts) > 2 {
		return strings.Join(parts[:len(parts)-2], "-")
	}
	return host
}
