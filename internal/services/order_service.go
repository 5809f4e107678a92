// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/curioshop/curios-backend/internal/models"
	"github.com/curioshop/curios-backend/internal/permissions"
	"github.com/curioshop/curios-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

// CreateOrderRequest accepts a user field on the wire but the service always
// forces ownership to the caller.
type CreateOrderRequest struct {
	User     uint `json:"user"`
	Product  uint `json:"product" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

type UpdateOrderRequest struct {
	User     *uint `json:"user"`
	Product  *uint `json:"product"`
	Quantity *int  `json:"quantity" validate:"omitempty,min=1"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) Create(identity *permissions.Identity, req *CreateOrderRequest) (*models.Order, error) {
	if !permissions.IsAuthenticated(identity) {
		return nil, ErrPermissionDenied
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	if err := s.checkProductExists(req.Product); err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:    identity.UserID,
		ProductID: req.Product,
		Quantity:  req.Quantity,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// List returns only the caller's own orders, newest-first.
func (s *OrderService) List(identity *permissions.Identity, params utils.PageParams) ([]models.Order, int64, error) {
	if !permissions.IsAuthenticated(identity) {
		return nil, 0, ErrPermissionDenied
	}

	query := s.db.Model(&models.Order{}).Where("user_id = ?", identity.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if !utils.ValidPage(total, params) {
		return nil, 0, ErrInvalidPage
	}

	query = query.Order("id DESC")
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// Get requires authentication but is not scoped to the owning user: any
// authenticated caller can retrieve any order by id.
func (s *OrderService) Get(identity *permissions.Identity, id uint) (*models.Order, error) {
	if !permissions.IsAuthenticated(identity) {
		return nil, ErrPermissionDenied
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// Update merges the supplied user/product/quantity fields. Like Get, it is
// not scoped beyond authentication. created_at is never written.
func (s *OrderService) Update(identity *permissions.Identity, id uint, req *UpdateOrderRequest) (*models.Order, error) {
	if !permissions.IsAuthenticated(identity) {
		return nil, ErrPermissionDenied
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.User != nil {
		if err := s.checkUserExists(*req.User); err != nil {
			return nil, err
		}
		updates["user_id"] = *req.User
	}
	if req.Product != nil {
		if err := s.checkProductExists(*req.Product); err != nil {
			return nil, err
		}
		updates["product_id"] = *req.Product
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	if len(updates) > 0 {
		if err := s.db.Model(&order).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	return &order, nil
}

func (s *OrderService) Delete(identity *permissions.Identity, id uint) error {
	if !permissions.IsAuthenticated(identity) {
		return ErrPermissionDenied
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&order).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func (s *OrderService) checkProductExists(productID uint) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return fieldValidationError("product", fmt.Sprintf("Invalid pk %d - object does not exist.", productID))
	}
	return nil
}

func (s *OrderService) checkUserExists(userID uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return fieldValidationError("user", fmt.Sprintf("Invalid pk %d - object does not exist.", userID))
	}
	return nil
}
