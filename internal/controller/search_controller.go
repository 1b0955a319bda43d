// FILE: internal/controller/search_controller.go
package controller

import (
	"errors"
	"strings"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"
	"adminsearch-be/internal/pkg/serverutils"
	"adminsearch-be/internal/service"
	internalWS "adminsearch-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	OpenSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Dismiss(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type searchController struct {
	service   service.ISearchService
	hub       *internalWS.Hub
	logger    logger.ILogger
	jwtSecret string
}

func NewSearchController(service service.ISearchService, hub *internalWS.Hub, logger logger.ILogger, jwtSecret string) ISearchController {
	return &searchController{
		service:   service,
		hub:       hub,
		logger:    logger,
		jwtSecret: jwtSecret,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/search")
	h.Use(serverutils.AdminGuard(c.jwtSecret))

	h.Get("/", c.Query)

	// Sessions back the dashboard widget
	h.Post("/sessions", c.OpenSession)
	h.Get("/sessions/:id", c.GetSession)
	h.Delete("/sessions/:id", c.CloseSession)
	h.Post("/sessions/:id/query", c.Search)
	h.Post("/sessions/:id/clear", c.Clear)
	h.Post("/sessions/:id/dismiss", c.Dismiss)
	h.Post("/sessions/:id/select", c.Select)

	// WebSocket
	h.Get("/sessions/:id/ws", c.ServeWs)
}

// searchError maps service errors onto HTTP statuses.
func searchError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrResultNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrInvalidResultType):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}

func (c *searchController) Query(ctx *fiber.Ctx) error {
	res, err := c.service.Query(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *searchController) OpenSession(ctx *fiber.Ctx) error {
	res, err := c.service.OpenSession(ctx.Context())
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.Response[*dto.SearchStateResponse]{
		Success: true,
		Code:    201,
		Message: "Search session opened",
		Data:    res,
	})
}

func (c *searchController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search session", res))
}

func (c *searchController) CloseSession(ctx *fiber.Ctx) error {
	if err := c.service.CloseSession(ctx.Context(), ctx.Params("id")); err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Search session closed", nil))
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Search(ctx.Context(), ctx.Params("id"), req.Query)
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search updated", res))
}

func (c *searchController) Clear(ctx *fiber.Ctx) error {
	res, err := c.service.Clear(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search cleared", res))
}

func (c *searchController) Dismiss(ctx *fiber.Ctx) error {
	res, err := c.service.Dismiss(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Results dismissed", res))
}

func (c *searchController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectResultRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Select(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Result selected", res))
}

// ServeWs streams the session's state changes. Clients fetch the current
// state with GET first; only later transitions are pushed.
func (c *searchController) ServeWs(ctx *fiber.Ctx) error {
	// Fiber recycles ctx buffers; the handler below outlives this request.
	sessionID := strings.Clone(ctx.Params("id"))
	if _, err := c.service.State(ctx.Context(), sessionID); err != nil {
		return searchError(ctx, err)
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("SearchController", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(c.hub, conn, sessionID)
			c.logger.Info("SearchController", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
