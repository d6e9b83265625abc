package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"donatehub/internal/i18n"
	"donatehub/internal/metrics"
	"donatehub/internal/volunteering"
	"donatehub/pkg/types"

	"github.com/sirupsen/logrus"
)

const maxAPIBodyBytes = 1 << 20

// resourceSubmitter stores every accepted request and remembers the last one.
type resourceSubmitter struct {
	resources resourceStore
	request   *types.DonateVolunteeringRequest
	created   *types.VolunteeringResource
}

func (rs *resourceSubmitter) SubmitVolunteering(ctx context.Context, req *types.DonateVolunteeringRequest) error {
	resource, err := rs.resources.CreateResource(ctx, req)
	if err != nil {
		return err
	}

	rs.request = req
	rs.created = resource
	return nil
}

type volunteeringResponse struct {
	ID string `json:"id"`
	*types.DonateVolunteeringRequest
}

type errorResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// lookupCategory resolves the :category path parameter. It writes the error
// response itself and returns nil when the request cannot continue.
func (s *Service) lookupCategory(ctx context.Context, w http.ResponseWriter, r *http.Request) *types.ResourceCategory {
	id, err := strconv.Atoi(r.PathValue("category"))
	if err != nil {
		http.NotFound(w, r)
		return nil
	}

	category, err := s.categories.CategoryByID(ctx, id)
	if errors.Is(err, types.ErrCategoryNotFound) {
		http.NotFound(w, r)
		return nil
	}
	if err != nil {
		s.logger.WithError(err).WithField("category", id).Error("failed to fetch resource category")
		s.internalServerError(w)
		return nil
	}

	return category
}

func (s *Service) openDialog(ctx context.Context, tr i18n.Translator, category *types.ResourceCategory, submitter volunteering.Submitter) (*volunteering.Dialog, error) {
	counties, err := s.counties.AllCounties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch counties: %w", err)
	}

	return volunteering.NewDialog(tr, counties, category.ID, submitter), nil
}

func (s *Service) renderVolunteering(w http.ResponseWriter, r *http.Request, status int, tr i18n.Translator, category *types.ResourceCategory, dialog *volunteering.Dialog) {
	view := dialog.View()

	data := VolunteeringPageData{
		BasePageData: basePageData(tr, view.Title),
		Category:     category,
		Action:       r.URL.RequestURI(),
		Dialog:       view,
	}

	s.renderTemplate(w, status, "page.volunteering", data)
}

func (s *Service) handleGetVolunteering(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category := s.lookupCategory(ctx, w, r)
	if category == nil {
		return
	}

	tr := s.catalog.FromRequest(r)
	dialog, err := s.openDialog(ctx, tr, category, &resourceSubmitter{resources: s.resources})
	if err != nil {
		s.logger.WithError(err).Error("failed to open volunteering dialog")
		s.internalServerError(w)
		return
	}

	s.renderVolunteering(w, r, http.StatusOK, tr, category, dialog)
}

func (s *Service) handlePostVolunteering(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category := s.lookupCategory(ctx, w, r)
	if category == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	var submission = new(types.VolunteeringSubmission)
	if err := decoder.Decode(submission, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	tr := s.catalog.FromRequest(r)
	dialog, err := s.openDialog(ctx, tr, category, &resourceSubmitter{resources: s.resources})
	if err != nil {
		s.logger.WithError(err).Error("failed to open volunteering dialog")
		s.internalServerError(w)
		return
	}

	dialog.Controller().Apply(submission)

	err = dialog.Submit(ctx)

	var fieldErrs volunteering.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		s.metrics.Rejected(category.ID, fieldErrs.Fields())
		s.logger.WithFields(logrus.Fields{
			"category":     category.ID,
			"field_errors": fieldErrs.Fields(),
		}).Info("validation errors during volunteering signup")

		s.renderVolunteering(w, r, http.StatusUnprocessableEntity, tr, category, dialog)
	case err != nil:
		s.metrics.Submission(category.ID, metrics.OutcomeFailed)
		s.logger.WithError(err).WithField("category", category.ID).Error("failed to store volunteering resource")

		s.redirectWithError(w, r, tr.T("signup.volunteering.failed"))
	default:
		s.metrics.Submission(category.ID, metrics.OutcomeAccepted)
		s.redirectWithNotice(w, r, tr.T("signup.volunteering.submitted"))
	}
}

// handleAPIVolunteering accepts the candidate as an untyped JSON object, so a
// wrongly typed value reaches the schema instead of failing the decode.
func (s *Service) handleAPIVolunteering(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category := s.lookupCategory(ctx, w, r)
	if category == nil {
		return
	}

	var candidate map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBodyBytes)).Decode(&candidate); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a json object"})
		return
	}

	// Category and type always come from the path.
	delete(candidate, volunteering.FieldCategory)
	delete(candidate, "type")

	tr := s.catalog.FromRequest(r)
	submitter := &resourceSubmitter{resources: s.resources}
	dialog, err := s.openDialog(ctx, tr, category, submitter)
	if err != nil {
		s.logger.WithError(err).Error("failed to open volunteering dialog")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	if err := dialog.Controller().SetAll(candidate); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	err = dialog.Submit(ctx)

	var fieldErrs volunteering.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		s.metrics.Rejected(category.ID, fieldErrs.Fields())
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: fieldErrs.Messages()})
	case err != nil:
		s.metrics.Submission(category.ID, metrics.OutcomeFailed)
		s.logger.WithError(err).WithField("category", category.ID).Error("failed to store volunteering resource")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: tr.T("signup.volunteering.failed")})
	default:
		s.metrics.Submission(category.ID, metrics.OutcomeAccepted)
		s.writeJSON(w, http.StatusCreated, volunteeringResponse{
			ID:                        submitter.created.ID,
			DonateVolunteeringRequest: submitter.request,
		})
	}
}
