package server

import (
	"context"
	"net/http"
	"time"

	"donatehub/internal/i18n"
	"donatehub/internal/volunteering"
	"donatehub/pkg/types"
)

const latestResourcesLimit = 10

type BasePageData struct {
	Title  string
	Lang   string
	Notice string
	Error  string
}

type HomePageData struct {
	BasePageData
	CategoriesHeading string
	LatestHeading     string
	Categories        []*types.ResourceCategory
	Latest            []*types.VolunteeringResource
}

type VolunteeringPageData struct {
	BasePageData
	Category *types.ResourceCategory
	Action   string
	Dialog   volunteering.DialogView
}

func basePageData(tr i18n.Translator, title string) BasePageData {
	return BasePageData{
		Title: title,
		Lang:  tr.Locale(),
	}
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	tr := s.catalog.FromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := s.categories.AllCategories(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch resource categories")
		s.internalServerError(w)
		return
	}

	latest, err := s.resources.LatestResources(ctx, latestResourcesLimit)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch latest resources")
		s.internalServerError(w)
		return
	}

	f := s.popFlash(w, r)

	data := HomePageData{
		BasePageData:      basePageData(tr, tr.T("home.title")),
		CategoriesHeading: tr.T("home.categories"),
		LatestHeading:     tr.T("home.latest"),
		Categories:        categories,
		Latest:            latest,
	}
	data.Notice = f.Notice
	data.Error = f.Error

	s.renderTemplate(w, http.StatusOK, "page.home", data)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
