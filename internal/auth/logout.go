package auth

import (
	"net/http"
	"os"

	"github.com/bunec-crvs/learning-api/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func cookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	SetAuthCookie(w, "jwt", "", -1)
	SetAuthCookie(w, "refresh_token", "", -1)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
