package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/config"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		log.Warn("Missing authorization code on login")
		http.Error(w, "authorization code required", http.StatusBadRequest)
		return
	}

	u, err := h.service.GoogleLogin(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Error("Google login failed")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	if err := h.issueTokens(w, u); err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil || u == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.issueTokens(w, u); err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) issueTokens(w http.ResponseWriter, u *User) error {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, accessTokenTTL)
	if err != nil {
		return err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Role, refreshTokenTTL)
	if err != nil {
		return err
	}

	auth.SetAuthCookie(w, "jwt", access, int(accessTokenTTL.Seconds()))
	auth.SetAuthCookie(w, "refresh_token", refresh, int(refreshTokenTTL.Seconds()))
	return nil
}
