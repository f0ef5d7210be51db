package server

import (
	"net/http"

	"github.com/and161185/clubhouse/internal/model"
	"github.com/go-chi/chi/v5"
)

func (srv *Server) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.content.ListAnnouncements(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) AddAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	var req model.AnnouncementRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := srv.content.AddAnnouncement(r.Context(), session(r), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (srv *Server) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.content.DeleteAnnouncement(r.Context(), session(r), chi.URLParam(r, "id")); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) SeasonStatsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.content.SeasonStats(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) UpdateSeasonStatsHandler(w http.ResponseWriter, r *http.Request) {
	var stats model.SeasonStats
	if !decode(w, r, &stats) {
		return
	}

	saved, err := srv.content.UpdateSeasonStats(r.Context(), session(r), stats)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (srv *Server) SocialStatsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.content.SocialStats(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) UpdateSocialStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req model.SocialStatsRequest
	if !decode(w, r, &req) {
		return
	}

	st, err := srv.content.UpdateSocialStats(r.Context(), session(r), chi.URLParam(r, "platform"), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
