package handler

import (
	"log/slog"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/infra/messaging"
	"bazaar/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	Broadcaster  *messaging.NavigationBroadcaster
	Logger       *slog.Logger
}

// NavigationHandler receives route commits and holds the shell's command socket.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	broadcaster  *messaging.NavigationBroadcaster
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		broadcaster:  params.Broadcaster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: params.Logger,
	}
}

// Commit tells the guard a route tree has mounted.
func (h *NavigationHandler) Commit(c echo.Context) error {
	var req usecase.RouteCommitInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid route input")
	}

	output, err := h.navigationUC.RouteCommitted(c.Request().Context(), req.Path)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

// Connect upgrades to the socket that carries replace commands to the shell.
// It blocks until the shell disconnects.
func (h *NavigationHandler) Connect(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Warn("Navigation socket upgrade failed", "error", err)

		return nil
	}

	h.broadcaster.Attach(conn)

	return nil
}
