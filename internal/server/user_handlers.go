package server

import (
	"net/http"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/go-chi/chi/v5"
)

type sessionResponse struct {
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expiresAt"`
	User      model.Identity `json:"user"`
}

func writeSession(w http.ResponseWriter, status int, s *access.Session, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, status, sessionResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		User:      s.Identity,
	})
}

func (srv *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	s, token, err := srv.accounts.Register(r.Context(), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, s, token)
}

func (srv *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if !decode(w, r, &creds) {
		return
	}

	s, token, err := srv.accounts.Authenticate(r.Context(), creds)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, s, token)
}

func (srv *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.accounts.Logout(session(r)); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestPasswordResetHandler answers 202 whether or not the email is known.
func (srv *Server) RequestPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordResetRequest
	if !decode(w, r, &req) {
		return
	}

	if err := srv.accounts.SendPasswordReset(r.Context(), req.Email); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (srv *Server) ConfirmPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordResetConfirm
	if !decode(w, r, &req) {
		return
	}

	if err := srv.accounts.ResetPassword(r.Context(), req); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := srv.accounts.ChangePassword(r.Context(), session(r), req); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := srv.accounts.Profile(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

func (srv *Server) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var update model.ProfileUpdate
	if !decode(w, r, &update) {
		return
	}

	identity, err := srv.accounts.UpdateProfile(r.Context(), session(r), update)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

func (srv *Server) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.accounts.ListUsers(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RoleUpdate
	if !decode(w, r, &req) {
		return
	}

	if err := srv.accounts.UpdateRole(r.Context(), session(r), chi.URLParam(r, "id"), req.Role); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	var update model.ProfileUpdate
	if !decode(w, r, &update) {
		return
	}

	if err := srv.accounts.UpdateUserDetails(r.Context(), session(r), chi.URLParam(r, "id"), update); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
