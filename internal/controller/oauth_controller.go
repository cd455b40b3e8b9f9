package controller

import (
	"fmt"
	"os"

	"petgroom-be/internal/pkg/serverutils"
	"petgroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service service.IOAuthService
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{service: service}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1/google")
	h.Get("", c.Login)
	h.Get("/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	url, err := c.service.GetLoginURL()
	if err != nil {
		return err
	}
	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	state := ctx.Query("state")
	if code == "" || state == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing code or state")
	}

	res, err := c.service.HandleCallback(ctx.Context(), code, state)
	if err != nil {
		return err
	}

	// Hand the token back to the frontend via redirect.
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
	}
	return ctx.Redirect(fmt.Sprintf("%s/app?token=%s", frontendURL, res.Token), fiber.StatusTemporaryRedirect)
}
