package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// TokenHandler issues bearer tokens at sign-in.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt — signs a 1-day token for the given identity.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Identity payload"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(ports.TokenIdentity{Email: req.Email, Name: req.Name})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
