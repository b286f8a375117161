package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Bienvenido a Hercules API Key del Poder Judicial del Estado de Coahuila de Zaragoza."

type RootHandler struct {
	stateKey string
}

func NewRootHandler(stateKey string) *RootHandler {
	return &RootHandler{stateKey: stateKey}
}

type welcomeResponse struct {
	Message  string `json:"message"`
	StateKey string `json:"estado_clave,omitempty"`
}

// Welcome handles GET /.
//
// @Summary      Welcome message
// @Tags         root
// @Produce      json
// @Success      200  {object}  welcomeResponse
// @Router       / [get]
func (h *RootHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, welcomeResponse{Message: WelcomeMessage, StateKey: h.stateKey})
}
