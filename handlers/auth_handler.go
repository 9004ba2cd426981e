package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/turf-kings/services"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	accessService services.AccessService
	jwtSecret     []byte
	now           func() time.Time
}

func NewAuthHandler(accessService services.AccessService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		accessService: accessService,
		jwtSecret:     []byte(jwtSecret),
		now:           time.Now,
	}
}

type loginInput struct {
	Code string `json:"code"`
}

// Login godoc
// @Summary Войти по коду капитана или администратора
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginInput true "Код доступа"
// @Success 200 {object} map[string]interface{} "token, role, expires_at"
// @Failure 400 {object} map[string]string "Пустой код"
// @Failure 401 {object} map[string]string "Неверный код"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Code == "" {
		badRequestResponse(w, r, errors.New("code is required"))
		return
	}

	role, err := h.accessService.Login(r.Context(), input.Code)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := h.now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"role": string(role),
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"token":      tokenString,
		"role":       role,
		"expires_at": expiresAt.UTC(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
