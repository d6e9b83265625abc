package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"donatehub/internal/i18n"
	"donatehub/internal/metrics"
	"donatehub/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates
var uiFS embed.FS
var decoder = form.NewDecoder()

type countyLister interface {
	AllCounties(ctx context.Context) ([]types.County, error)
}

type categoryFinder interface {
	AllCategories(ctx context.Context) ([]*types.ResourceCategory, error)
	CategoryByID(ctx context.Context, id int) (*types.ResourceCategory, error)
}

type resourceStore interface {
	CreateResource(ctx context.Context, req *types.DonateVolunteeringRequest) (*types.VolunteeringResource, error)
	LatestResources(ctx context.Context, limit uint64) ([]*types.VolunteeringResource, error)
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	catalog   *i18n.Catalog
	metrics   *metrics.Metrics
	templates *template.Template
	cookie    *securecookie.SecureCookie

	counties   countyLister
	categories categoryFinder
	resources  resourceStore

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	catalog *i18n.Catalog,
	metrics *metrics.Metrics,
	counties countyLister,
	categories categoryFinder,
	resources resourceStore,
) (*Service, error) {
	mux := flow.New()

	cookie, err := newSecureCookie(config, logger)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:  logger,
		config:  config,
		catalog: catalog,
		metrics: metrics,
		cookie:  cookie,

		counties:   counties,
		categories: categories,
		resources:  resources,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	// Unmatched paths never reach flow middleware, so the slash redirect
	// has to sit in front of the mux.
	s.server.Handler = s.StripTrailingSlash(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router without a listener.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler(), http.MethodGet)

	r.HandleFunc("/signup/volunteering/:category|^[0-9]+$", s.handleGetVolunteering, http.MethodGet)
	r.HandleFunc("/signup/volunteering/:category|^[0-9]+$", s.handlePostVolunteering, http.MethodPost)

	r.HandleFunc("/api/volunteering/:category|^[0-9]+$", s.handleAPIVolunteering, http.MethodPost)
}

func newSecureCookie(config *types.Config, logger *logrus.Logger) (*securecookie.SecureCookie, error) {
	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}

	if len(hashKey) == 0 {
		logger.Warn("COOKIE_HASH_KEY not set, flash cookies will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return securecookie.New(hashKey, blockKey), nil
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"isoDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(time.DateOnly)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
