package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the static home and about pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return c.Render("pages/home", fiber.Map{
		"Title": "Home",
	})
}

func (h *PagesHandler) About(c *fiber.Ctx) error {
	return c.Render("pages/about", fiber.Map{
		"Title": "About",
	})
}
