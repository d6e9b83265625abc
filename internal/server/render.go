package server

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// renderTemplate buffers the page so a failed execution still answers 500.
func (s *Service) renderTemplate(w http.ResponseWriter, status int, templateName string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.WithError(err).WithField("template", templateName).Error("failed to render template")
		s.internalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode json response")
		s.internalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
