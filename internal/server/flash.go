package server

import (
	"net/http"
	"net/url"
	"time"
)

const flashMaxAge = time.Minute

// flash carries a one-shot message across the redirect that follows a POST.
type flash struct {
	Notice string
	Error  string
}

func (s *Service) setFlash(w http.ResponseWriter, f flash) {
	encoded, err := s.cookie.Encode(s.config.FlashCookieName, f)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.FlashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(flashMaxAge.Seconds()),
	})
}

// secureCookies is false only in development, which runs over plain http.
func (s *Service) secureCookies() bool {
	return s.config.Environment != "development"
}

// popFlash reads and clears the flash cookie. A missing or tampered cookie
// yields an empty flash.
func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) flash {
	var f flash

	cookie, err := r.Cookie(s.config.FlashCookieName)
	if err != nil {
		return f
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.FlashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})

	if err := s.cookie.Decode(s.config.FlashCookieName, cookie.Value, &f); err != nil {
		s.logger.WithError(err).Debug("discarding unreadable flash cookie")
		return flash{}
	}

	return f
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, notice string) {
	s.setFlash(w, flash{Notice: notice})
	http.Redirect(w, r, homeURL(r), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	s.setFlash(w, flash{Error: msg})
	http.Redirect(w, r, homeURL(r), http.StatusSeeOther)
}

// homeURL keeps an explicit language choice across the redirect.
func homeURL(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		return "/"
	}

	v := url.Values{}
	v.Set("lang", lang)
	return "/?" + v.Encode()
}
