package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
)

// imageSaver lo implementa *media.ImageStore.
type imageSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(rel string) error
}

// ProductHandler directorio de productos (staff).
type ProductHandler struct {
	uc         *usecase.ProductUseCase
	categoryUC *usecase.CategoryUseCase
	images     imageSaver
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, categoryUC *usecase.CategoryUseCase, images imageSaver) *ProductHandler {
	return &ProductHandler{uc: uc, categoryUC: categoryUC, images: images}
}

// ListByCategory GET /products/category/:id
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	category, products, err := h.uc.ListByCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "products/list", fiber.Map{
		"Title":    category.Name,
		"Category": category,
		"Products": products,
	})
}

// CreateForm GET /categories/:id/products/create. El formulario llega con la categoría preseleccionada.
func (h *ProductHandler) CreateForm(c *fiber.Ctx) error {
	category, err := h.categoryUC.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	data, err := h.formData(c, dto.ProductForm{CategoryID: category.ID}, category.ID, "")
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "products/form", data)
}

// Create POST /categories/:id/products/create
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	parentID := c.Params("id")
	category, err := h.categoryUC.GetByID(c.UserContext(), parentID)
	if err != nil {
		return err
	}
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if err := h.attachImage(c, &in); err != nil {
		return h.formError(c, in, category.ID, "", err)
	}
	if _, err := h.uc.Create(c.UserContext(), category.ID, in); err != nil {
		h.discardImage(c, &in, "")
		return h.formError(c, in, category.ID, "", err)
	}
	return c.Redirect("/products/category/"+category.ID, fiber.StatusSeeOther)
}

// EditForm GET /products/:id/edit
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	data, err := h.formData(c, product.Form(), product.CategoryID, product.ID)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "products/form", data)
}

// Update POST /products/:id/edit. Redirige a la propia página de edición.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if err := h.attachImage(c, &in); err != nil {
		in.Image = product.Image
		return h.formError(c, in, product.CategoryID, product.ID, err)
	}
	if _, err := h.uc.Update(c.UserContext(), product.ID, in); err != nil {
		h.discardImage(c, &in, product.Image)
		return h.formError(c, in, product.CategoryID, product.ID, err)
	}
	return c.Redirect("/products/"+product.ID+"/edit", fiber.StatusSeeOther)
}

// DeleteConfirm GET /products/:id/delete. Solo muestra la confirmación; no modifica nada.
func (h *ProductHandler) DeleteConfirm(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "products/delete", fiber.Map{"Title": product.Name, "Product": product})
}

// Delete POST /products/:id/delete. Alterna IsActive y vuelve al listado de la categoría.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	product, err := h.uc.ToggleActive(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Redirect("/products/category/"+product.CategoryID, fiber.StatusSeeOther)
}

// attachImage valida el formulario (incluida la categoría) y guarda la imagen subida solo si es válido.
func (h *ProductHandler) attachImage(c *fiber.Ctx, in *dto.ProductForm) error {
	if err := h.uc.Validate(c.UserContext(), in); err != nil {
		return err
	}
	fh, err := c.FormFile("image")
	if err != nil || fh.Size == 0 {
		return nil
	}
	rel, err := h.images.Save(fh)
	if err != nil {
		return err
	}
	in.Image = rel
	return nil
}

// discardImage borra la imagen recién subida si el guardado falló y repone current en el formulario.
func (h *ProductHandler) discardImage(c *fiber.Ctx, in *dto.ProductForm, current string) {
	if in.Image != "" && in.Image != current {
		if err := h.images.Remove(in.Image); err != nil {
			reqID, _ := c.Locals(LocalRequestID).(string)
			log.Warn().Err(err).Str("image", in.Image).Str("request_id", reqID).Msg("no se pudo borrar la imagen huérfana")
		}
	}
	in.Image = current
}

func (h *ProductHandler) formError(c *fiber.Ctx, in dto.ProductForm, categoryID, productID string, err error) error {
	if !isValidation(err) {
		return err
	}
	data, derr := h.formData(c, in, categoryID, productID)
	if derr != nil {
		return derr
	}
	return renderForm(c, "products/form", data, err)
}

func (h *ProductHandler) formData(c *fiber.Ctx, form dto.ProductForm, categoryID, productID string) (fiber.Map, error) {
	categories, err := h.categoryUC.List(c.UserContext())
	if err != nil {
		return nil, err
	}
	data := fiber.Map{
		"Form":       form,
		"Categories": categories,
		"Back":       "/products/category/" + categoryID,
	}
	if productID == "" {
		data["Title"] = "Nuevo producto"
		data["Action"] = "/categories/" + categoryID + "/products/create"
	} else {
		data["Title"] = "Editar producto"
		data["Action"] = "/products/" + productID + "/edit"
	}
	return data, nil
}
