package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

type sessionResponse struct {
	LoggedIn        bool            `json:"loggedIn"`
	Session         *entity.Session `json:"session,omitempty"`
	RememberedEmail string          `json:"rememberedEmail,omitempty"`
}

type passwordStrengthRequest struct {
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	session, err := h.auth.Register(r.Context(), ScopeFromContext(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{LoggedIn: true, Session: session})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	session, err := h.auth.Login(r.Context(), ScopeFromContext(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{LoggedIn: true, Session: session})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), ScopeFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, true)
}

// CurrentSession never fails: an unreadable session reads as logged out.
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	scope := ScopeFromContext(r.Context())
	resp := sessionResponse{RememberedEmail: h.auth.RememberedEmail(r.Context(), scope)}
	session, err := h.auth.CurrentUser(r.Context(), scope)
	if err != nil {
		h.log.Warnf("Treating scope %s as logged out: %v", scope, err)
	}
	if session != nil {
		resp.LoggedIn = true
		resp.Session = session
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.auth.Profile(r.Context(), ScopeFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req passwordStrengthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.auth.PasswordStrength(req.Password))
}
