// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/curioshop/curios-backend/internal/models"
	"github.com/curioshop/curios-backend/internal/permissions"
	"github.com/curioshop/curios-backend/internal/utils"
)

type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

// UpdateProductRequest uses pointer fields so the service can tell an
// omitted field from a zero value and merge only what was supplied.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
}

type ProductListParams struct {
	utils.PageParams
	Name     string
	Ordering string
}

var productOrderingFields = []string{"id", "name", "description", "image", "price", "quantity", "created_at", "updated_at"}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(identity *permissions.Identity, req *CreateProductRequest) (*models.Product, error) {
	if !permissions.IsAdminOrReadOnly(identity, http.MethodPost) {
		return nil, ErrPermissionDenied
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// List is open to everyone: newest-first by default, optional
// case-insensitive name filter and ordering override, paginated.
func (s *CatalogService) List(params ProductListParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Name != "" {
		searchTerm := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if !utils.ValidPage(total, params.PageParams) {
		return nil, 0, ErrInvalidPage
	}

	query = utils.ApplyOrdering(query, params.Ordering, productOrderingFields, "id DESC")
	query = utils.ApplyPagination(query, params.PageParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) Update(identity *permissions.Identity, id uint, req *UpdateProductRequest) (*models.Product, error) {
	if !permissions.IsAdminOrReadOnly(identity, http.MethodPut) {
		return nil, ErrPermissionDenied
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Merge only the supplied fields onto the existing record
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return &product, nil
}

func (s *CatalogService) Delete(identity *permissions.Identity, id uint) error {
	if !permissions.IsAdminOrReadOnly(identity, http.MethodDelete) {
		return ErrPermissionDenied
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
