package controller

import (
	"petgroom-be/internal/dto"
	"petgroom-be/internal/pkg/serverutils"
	"petgroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Patch(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type clientController struct {
	clientService service.IClientService
}

func NewClientController(clientService service.IClientService) IClientController {
	return &clientController{
		clientService: clientService,
	}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/client/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/list", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Patch("/:id", c.Patch)
	h.Delete("/:id", c.Delete)
}

func authUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func paramId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (c *clientController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.clientService.GetAll(ctx.Context(), authUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client list", res))
}

func (c *clientController) List(ctx *fiber.Ctx) error {
	res, err := c.clientService.List(ctx.Context(), authUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client list", res))
}

func (c *clientController) Show(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	res, err := c.clientService.Show(ctx.Context(), authUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client detail", res))
}

func (c *clientController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Create(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Client created", res))
}

func (c *clientController) Update(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Update(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client updated", res))
}

func (c *clientController) Patch(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.PatchClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Patch(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Client updated", res))
}

func (c *clientController) Delete(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	if err := c.clientService.Delete(ctx.Context(), authUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Client deleted", nil))
}
