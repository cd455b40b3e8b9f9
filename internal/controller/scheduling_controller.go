package controller

import (
	"time"

	"petgroom-be/internal/dto"
	"petgroom-be/internal/pkg/serverutils"
	"petgroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISchedulingController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Patch(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type schedulingController struct {
	schedulingService service.ISchedulingService
}

func NewSchedulingController(schedulingService service.ISchedulingService) ISchedulingController {
	return &schedulingController{
		schedulingService: schedulingService,
	}
}

func (c *schedulingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scheduling/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/stats", c.Stats)
	h.Get("/:id", c.Show)
	h.Put("/:id/status", c.UpdateStatus)
	h.Patch("/:id", c.Patch)
}

func (c *schedulingController) GetAll(ctx *fiber.Ctx) error {
	var filter service.SchedulingFilter

	if raw := ctx.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid client_id")
		}
		filter.ClientId = &id
	}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	from, err := queryDate(ctx, "from")
	if err != nil {
		return err
	}
	filter.From = from
	to, err := queryDate(ctx, "to")
	if err != nil {
		return err
	}
	filter.To = to

	res, err := c.schedulingService.GetAll(ctx.Context(), authUserId(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scheduling list", res))
}

func (c *schedulingController) Show(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	res, err := c.schedulingService.Show(ctx.Context(), authUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scheduling detail", res))
}

func (c *schedulingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSchedulingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.schedulingService.Create(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Scheduling created", res))
}

func (c *schedulingController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSchedulingStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.schedulingService.UpdateStatus(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scheduling status updated", res))
}

func (c *schedulingController) Patch(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.PatchSchedulingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.schedulingService.Patch(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scheduling updated", res))
}

func (c *schedulingController) Stats(ctx *fiber.Ctx) error {
	from, err := queryDate(ctx, "from")
	if err != nil {
		return err
	}
	to, err := queryDate(ctx, "to")
	if err != nil {
		return err
	}

	res, err := c.schedulingService.Stats(ctx.Context(), authUserId(ctx), from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scheduling stats", res))
}

func queryDate(ctx *fiber.Ctx, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" date")
		}
	}
	return &t, nil
}
