package controller

import (
	"errors"
	"strconv"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/mapper"
	"adminsearch-be/internal/pkg/logger"
	"adminsearch-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type logController struct {
	logger    logger.ILogger
	jwtSecret string
}

func NewLogController(logger logger.ILogger, jwtSecret string) ILogController {
	return &logController{
		logger:    logger,
		jwtSecret: jwtSecret,
	}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/logs")
	h.Use(serverutils.AdminGuard(c.jwtSecret))

	h.Get("/", c.GetLogs)
	h.Get("/:id", c.GetLogDetail)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	entries, err := c.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	logs := make([]dto.LogListResponse, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, mapper.ToLogListResponse(entry))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", dto.LogPageResponse{
		Page:  page,
		Limit: limit,
		Logs:  logs,
	}))
}

func (c *logController) GetLogDetail(ctx *fiber.Ctx) error {
	logId := ctx.Params("id") // MD5 hash, not UUID

	entry, err := c.logger.GetLogById(logId)
	if errors.Is(err, logger.ErrLogNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log not found"))
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", mapper.ToLogDetailResponse(*entry)))
}
