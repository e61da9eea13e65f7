package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
	"github.com/matzehuels/gitwrapped/pkg/render/card"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

type shareBody struct {
	Text     string `json:"text"`
	TweetURL string `json:"tweet_url"`
	Score    int    `json:"score"`
}

type trendingBody struct {
	Since string                 `json:"since"`
	Query string                 `json:"query,omitempty"`
	Items []wrapped.TrendingRepo `json:"items"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	vm, ok := s.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, vm)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	vm, ok := s.generate(w, r)
	if !ok {
		return
	}
	svg, err := card.RenderSVG(vm)
	if err != nil {
		s.logger.Error("render card", "login", vm.Profile.Login, "err", err)
		writeError(w, apperr.Wrap(apperr.ErrCodeInternal, err, "render card"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	vm, ok := s.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, shareBody{
		Text:     wrapped.ShareText(vm),
		TweetURL: wrapped.TweetURL(vm),
		Score:    vm.Stats.Score,
	})
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	if s.trending == nil {
		writeError(w, apperr.New(apperr.ErrCodeUnsupported, "trending is not configured"))
		return
	}
	since := wrapped.TrendingSince(s.now())
	repos, err := s.trending.FetchTrending(r.Context(), since, refreshParam(r))
	if err != nil {
		s.logger.Warn("fetch trending", "err", err)
		if apperr.GetCode(err) == "" {
			err = apperr.Wrap(apperr.ErrCodeNetwork, err, "could not load trending repositories")
		}
		writeError(w, err)
		return
	}
	q := r.URL.Query().Get("q")
	items := wrapped.FilterTrending(wrapped.TrendingFromGitHub(repos), q)
	if items == nil {
		items = []wrapped.TrendingRepo{}
	}
	writeJSON(w, http.StatusOK, trendingBody{
		Since: since.UTC().Format("2006-01-02"),
		Query: q,
		Items: items,
	})
}

// generate runs the service for the {username} route parameter, writing
// the error response itself when it fails.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) (*wrapped.ViewModel, bool) {
	username := chi.URLParam(r, "username")
	vm, cached, err := s.gen.Generate(r.Context(), username, refreshParam(r))
	if err != nil {
		if apperr.HTTPStatus(err) >= http.StatusInternalServerError {
			s.logger.Error("generate", "username", username, "err", err)
		}
		writeError(w, err)
		return nil, false
	}
	w.Header().Set("X-Cache", cacheHeader(cached))
	return vm, true
}

func refreshParam(r *http.Request) bool {
	v := r.URL.Query().Get("refresh")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func cacheHeader(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}

func notFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	body := errorBody{Code: apperr.GetCode(err), Message: apperr.UserMessage(err)}
	if body.Code == "" {
		body = errorBody{Code: apperr.ErrCodeInternal, Message: "internal error"}
	}
	writeJSON(w, apperr.HTTPStatus(err), body)
}
