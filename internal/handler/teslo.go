package handler

import (
	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/middleware"
	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
}

// Create stores a product owned by the authenticated user.
func (h *ProductHandler) Create(c echo.Context, payload *product.CreateProductPayload) (*product.Product, error) {
	owner := middleware.GetUser(c)
	if owner == nil {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.products.Create(c.Request().Context(), owner, payload)
}

func (h *ProductHandler) FindAll(c echo.Context, payload *product.ListProductsPayload) ([]product.Product, error) {
	return h.products.FindAll(c.Request().Context(), payload)
}

func (h *ProductHandler) FindOne(c echo.Context, payload *product.GetProductPayload) (*product.Product, error) {
	return h.products.FindOne(c.Request().Context(), payload.Term)
}

func (h *ProductHandler) Update(c echo.Context, payload *product.UpdateProductPayload) (*product.Product, error) {
	return h.products.Update(c.Request().Context(), payload)
}

func (h *ProductHandler) Remove(c echo.Context, payload *product.DeleteProductPayload) error {
	return h.products.Remove(c.Request().Context(), payload)
}

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func (h *AuthHandler) Register(c echo.Context, payload *user.RegisterPayload) (*user.AuthResponse, error) {
	return h.auth.Register(c.Request().Context(), payload)
}

func (h *AuthHandler) Login(c echo.Context, payload *user.LoginPayload) (*user.AuthResponse, error) {
	return h.auth.Login(c.Request().Context(), payload)
}

func (h *AuthHandler) CheckStatus(c echo.Context, _ *user.CheckStatusPayload) (*user.AuthResponse, error) {
	u := middleware.GetUser(c)
	if u == nil {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.auth.CheckStatus(c.Request().Context(), u)
}

type FileHandler struct {
	Handler
	files *service.FileService
}

// UploadProductImage reads the multipart "file" field.
func (h *FileHandler) UploadProductImage(c echo.Context, _ *model.EmptyPayload) (*service.FileUploadResponse, error) {
	// A missing field leaves fh nil, which the service rejects.
	fh, _ := c.FormFile("file")
	return h.files.UploadProductImage(c.Request().Context(), fh)
}

type productImagePayload struct {
	ImageName string `param:"imageName"`
}

func (p *productImagePayload) Validate() error {
	return nil
}

// FindProductImage returns the on-disk path of a stored image.
func (h *FileHandler) FindProductImage(c echo.Context, payload *productImagePayload) (string, error) {
	return h.files.ProductImagePath(c.Request().Context(), payload.ImageName)
}
