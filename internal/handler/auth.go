package handler

import (
	"net/http"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var reqBody struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Register(reqBody.Name, domain.Credentials{Email: reqBody.Email, Password: reqBody.Password})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setAccessCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"access": token, "user": user})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var reqBody struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Login(domain.Credentials{Email: reqBody.Email, Password: reqBody.Password})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setAccessCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"access": token, "user": user})
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.Me(userId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile handles PUT /api/user/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var reqBody struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		AvatarUrl *string `json:"avatarUrl"`
	}
	if err := utils.Decode(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.UpdateProfile(userId, domain.UserUpdate{Name: reqBody.Name, Email: reqBody.Email, AvatarUrl: reqBody.AvatarUrl})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   int(h.cfg.Public.JwtTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
