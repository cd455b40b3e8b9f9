package controller

import (
	"petgroom-be/internal/dto"
	"petgroom-be/internal/pkg/serverutils"
	"petgroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	CalculatePrice(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/calculate-price", c.CalculatePrice)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Deactivate)
}

func (c *subscriptionController) GetAll(ctx *fiber.Ctx) error {
	var clientId *uuid.UUID
	if raw := ctx.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid client_id")
		}
		clientId = &id
	}

	res, err := c.subscriptionService.GetAll(ctx.Context(), authUserId(ctx), clientId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription list", res))
}

func (c *subscriptionController) Show(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Show(ctx.Context(), authUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription detail", res))
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Create(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", res))
}

func (c *subscriptionController) Update(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Update(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription updated", res))
}

func (c *subscriptionController) Deactivate(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	if err := c.subscriptionService.Deactivate(ctx.Context(), authUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Subscription deactivated", nil))
}

func (c *subscriptionController) CalculatePrice(ctx *fiber.Ctx) error {
	var req dto.CalculatePriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.CalculatePrice(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Price preview", res))
}
