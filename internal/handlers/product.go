// internal/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/curioshop/curios-backend/internal/middleware"
	"github.com/curioshop/curios-backend/internal/permissions"
	"github.com/curioshop/curios-backend/internal/services"
	"github.com/curioshop/curios-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
}

func NewProductHandler(catalogService *services.CatalogService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		storageService: storageService,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.NotFoundResponse(c, "")
		return 0, false
	}
	return uint(id), true
}

// POST /curios/create
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	product, err := h.catalogService.Create(middleware.GetIdentity(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// GET /curios/list
func (h *ProductHandler) List(c *gin.Context) {
	params := services.ProductListParams{
		PageParams: utils.GetPageParams(c),
		Name:       c.Query("name"),
		Ordering:   c.Query("ordering"),
	}

	products, total, err := h.catalogService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.NewPageEnvelope(c, total, params.PageParams, products))
}

// GET /curios/detail/:id
func (h *ProductHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// PUT/PATCH /curios/update/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	product, err := h.catalogService.Update(middleware.GetIdentity(c), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// DELETE /curios/delete/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(middleware.GetIdentity(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// POST /curios/upload-image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if !permissions.IsAdminOrReadOnly(middleware.GetIdentity(c), http.MethodPost) {
		utils.ForbiddenResponse(c, "")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image uploaded.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Could not read uploaded image.")
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, fileHeader)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
