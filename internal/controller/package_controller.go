package controller

import (
	"petgroom-be/internal/dto"
	"petgroom-be/internal/pkg/serverutils"
	"petgroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPackageController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListPrices(ctx *fiber.Ctx) error
	CreatePrice(ctx *fiber.Ctx) error
	UpdatePrice(ctx *fiber.Ctx) error
	DeletePrice(ctx *fiber.Ctx) error
}

type packageController struct {
	packageService service.IPackageService
}

func NewPackageController(packageService service.IPackageService) IPackageController {
	return &packageController{
		packageService: packageService,
	}
}

func (c *packageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/package/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/prices", c.ListPrices)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/prices", c.CreatePrice)
	h.Put("/:id/prices/:priceId", c.UpdatePrice)
	h.Delete("/:id/prices/:priceId", c.DeletePrice)
}

func (c *packageController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.packageService.GetAll(ctx.Context(), authUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package list", res))
}

func (c *packageController) Show(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	res, err := c.packageService.Show(ctx.Context(), authUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package detail", res))
}

func (c *packageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePackageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.Create(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Package created", res))
}

func (c *packageController) Update(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePackageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.Update(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package updated", res))
}

func (c *packageController) Delete(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	if err := c.packageService.Delete(ctx.Context(), authUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Package deleted", nil))
}

func (c *packageController) ListPrices(ctx *fiber.Ctx) error {
	res, err := c.packageService.ListPrices(ctx.Context(), authUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Price catalog", res))
}

func (c *packageController) CreatePrice(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePackagePriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PackageId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.CreatePrice(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Price created", res))
}

func (c *packageController) UpdatePrice(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	priceId, err := uuid.Parse(ctx.Params("priceId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid price id")
	}

	var req dto.UpdatePackagePriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PackageId = id
	req.PriceId = priceId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.UpdatePrice(ctx.Context(), authUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Price updated", res))
}

func (c *packageController) DeletePrice(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	priceId, err := uuid.Parse(ctx.Params("priceId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid price id")
	}

	if err := c.packageService.DeletePrice(ctx.Context(), authUserId(ctx), id, priceId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Price deleted", nil))
}
