package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
)

const categoriesIndex = "/categories"

// CategoryHandler directorio de categorías (solo superusuarios).
type CategoryHandler struct {
	uc        *usecase.CategoryUseCase
	productUC *usecase.ProductUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, productUC *usecase.ProductUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, productUC: productUC}
}

// List GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "categories/list", fiber.Map{"Title": "Categorías", "Categories": categories})
}

// CreateForm GET /categories/create
func (h *CategoryHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "categories/form", categoryFormData(dto.CategoryForm{IsActive: true}, ""))
}

// Create POST /categories/create
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		if isValidation(err) {
			return renderForm(c, "categories/form", categoryFormData(in, ""), err)
		}
		return err
	}
	return c.Redirect(categoriesIndex, fiber.StatusSeeOther)
}

// EditForm GET /categories/:id/edit
func (h *CategoryHandler) EditForm(c *fiber.Ctx) error {
	category, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "categories/form", categoryFormData(category.Form(), category.ID))
}

// Update POST /categories/:id/edit. Aplica el descuento indicado a los productos de la categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		if isValidation(err) {
			return renderForm(c, "categories/form", categoryFormData(in, id), err)
		}
		return err
	}
	return c.Redirect(categoriesIndex, fiber.StatusSeeOther)
}

// DeleteConfirm GET /categories/:id/delete
func (h *CategoryHandler) DeleteConfirm(c *fiber.Ctx) error {
	category, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "categories/delete", fiber.Map{"Title": "Eliminar categoría", "Category": category})
}

// Delete POST /categories/:id/delete. Baja lógica.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect(categoriesIndex, fiber.StatusSeeOther)
}

// Products GET /categories/:id/products. Todos los productos de la categoría, activos o no.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	category, products, err := h.productUC.ListByCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "categories/products", fiber.Map{
		"Title":    "Productos de " + category.Name,
		"Category": category,
		"Products": products,
	})
}

func categoryFormData(form dto.CategoryForm, id string) fiber.Map {
	if id == "" {
		return fiber.Map{"Title": "Nueva categoría", "Form": form, "Action": "/categories/create", "IsNew": true}
	}
	return fiber.Map{"Title": "Editar categoría", "Form": form, "Action": "/categories/" + id + "/edit", "IsNew": false}
}
