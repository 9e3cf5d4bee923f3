package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
)

const usersIndex = "/users"

// UserHandler directorio de usuarios (staff).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "users/list", fiber.Map{"Title": "Usuarios", "Users": users})
}

// CreateForm GET /users/create
func (h *UserHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "users/form", h.formData(dto.UserForm{}, ""))
}

// Create POST /users/create
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		if isValidation(err) {
			return renderForm(c, "users/form", h.formData(in, ""), err)
		}
		return err
	}
	return c.Redirect(usersIndex, fiber.StatusSeeOther)
}

// EditForm GET /users/:id/edit
func (h *UserHandler) EditForm(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "users/form", h.formData(user.Form(), user.ID))
}

// Update POST /users/:id/edit
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		if isValidation(err) {
			return renderForm(c, "users/form", h.formData(in, id), err)
		}
		return err
	}
	return c.Redirect(usersIndex, fiber.StatusSeeOther)
}

// DeleteConfirm GET /users/:id/delete
func (h *UserHandler) DeleteConfirm(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "users/delete", fiber.Map{"Title": "Eliminar usuario", "User": user})
}

// Delete POST /users/:id/delete. Baja lógica.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Deactivate(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect(usersIndex, fiber.StatusSeeOther)
}

func (h *UserHandler) formData(form dto.UserForm, id string) fiber.Map {
	form.Password1, form.Password2 = "", ""
	if id == "" {
		return fiber.Map{"Title": "Nuevo usuario", "Form": form, "Action": "/users/create", "IsNew": true}
	}
	return fiber.Map{"Title": "Editar usuario", "Form": form, "Action": "/users/" + id + "/edit", "IsNew": false}
}
