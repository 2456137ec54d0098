package handlers

import (
	"errors"

	"userbook/internal/dto"
	"userbook/internal/service"
	"userbook/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UsersHandler struct {
	users  *service.UserService
	flash  *flash.Store
	logger *zap.Logger
}

func NewUsersHandler(users *service.UserService, flash *flash.Store, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		users:  users,
		flash:  flash,
		logger: logger,
	}
}

// userForm is the view model for the new/edit templates. On a failed write it
// carries the rejected input back to the form for correction.
type userForm struct {
	ID       string
	Username string
	Email    string
}

// userParams copies exactly the permitted fields out of the form body.
// Any other field under the user namespace never reaches the store.
func userParams(c *fiber.Ctx) dto.UserParams {
	return dto.NewUserParams(
		c.FormValue("user[username]"),
		c.FormValue("user[email]"),
	)
}

// Index renders the full collection. An empty collection is a valid page.
func (h *UsersHandler) Index(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		h.logger.Error("listing users failed", zap.Error(err))
		return internalError(c)
	}

	msg, _ := h.flash.Take(c)
	return c.Render("users/index", fiber.Map{
		"Title": "Users",
		"Users": users,
		"Flash": msg,
	})
}

// New renders a blank creation form. Nothing is persisted.
func (h *UsersHandler) New(c *fiber.Ctx) error {
	return c.Render("users/new", fiber.Map{
		"Title": "New user",
		"Form":  userForm{},
	})
}

func (h *UsersHandler) Create(c *fiber.Ctx) error {
	params := userParams(c)

	user, err := h.users.CreateUser(c.Context(), params)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).Render("users/new", fiber.Map{
				"Title":  "New user",
				"Form":   userForm{Username: params.Username, Email: params.Email},
				"Errors": verr.Fields,
			})
		}
		h.logger.Error("creating user failed", zap.Error(err))
		return internalError(c)
	}

	if err := h.flash.Success(c, "New user created!"); err != nil {
		h.logger.Warn("saving flash message failed", zap.Error(err))
	}
	return c.Redirect("/users/"+user.ID.String(), fiber.StatusSeeOther)
}

func (h *UsersHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	user, err := h.users.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c)
		}
		h.logger.Error("loading user failed", zap.Error(err))
		return internalError(c)
	}

	return c.Render("users/edit", fiber.Map{
		"Title": "Edit user",
		"Form": userForm{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	params := userParams(c)

	user, err := h.users.UpdateUser(c.Context(), id, params)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c)
		}
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).Render("users/edit", fiber.Map{
				"Title": "Edit user",
				"Form": userForm{
					ID:       id.String(),
					Username: params.Username,
					Email:    params.Email,
				},
				"Errors": verr.Fields,
			})
		}
		h.logger.Error("updating user failed", zap.Error(err))
		return internalError(c)
	}

	if err := h.flash.Success(c, "User updated!"); err != nil {
		h.logger.Warn("saving flash message failed", zap.Error(err))
	}
	return c.Redirect("/users/"+user.ID.String(), fiber.StatusSeeOther)
}

func (h *UsersHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	user, err := h.users.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c)
		}
		h.logger.Error("loading user failed", zap.Error(err))
		return internalError(c)
	}

	msg, _ := h.flash.Take(c)
	return c.Render("users/show", fiber.Map{
		"Title": user.Username,
		"User":  user,
		"Flash": msg,
	})
}

func (h *UsersHandler) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	if err := h.users.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c)
		}
		h.logger.Error("deleting user failed", zap.Error(err))
		return internalError(c)
	}

	if err := h.flash.Danger(c, "User was deleted!"); err != nil {
		h.logger.Warn("saving flash message failed", zap.Error(err))
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/not_found", fiber.Map{
		"Title": "Not found",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/internal", fiber.Map{
		"Title": "Something went wrong",
	})
}
