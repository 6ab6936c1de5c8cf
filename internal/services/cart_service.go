// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vintagecottage/storefront/internal/models"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

var ErrItemNotInCart = errors.New("item not in cart")

// FetchCart loads the session's raw rows, batch-fetches the matching
// products, and merges them in a single pass. A vanished product still
// renders with placeholder data rather than dropping the line. Errors are
// propagated; the fail-safe-empty policy lives at the HTTP boundary where
// it can be logged and flagged.
func (s *CartService) FetchCart(sessionID string) (*models.Cart, error) {
	cart := &models.Cart{SessionID: sessionID, Items: []models.CartLine{}}
	if sessionID == "" {
		return cart, nil
	}

	var rows []models.CartItem
	if err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	if len(rows) == 0 {
		return cart, nil
	}

	productIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		productIDs = append(productIDs, row.ProductID)
	}

	var products []models.Product
	if err := s.db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart products: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, row := range rows {
		line := models.CartLine{
			ProductID: row.ProductID,
			Title:     "Unknown Product",
			Image:     models.ImageList{}.First(),
			Quantity:  row.Quantity,
		}
		if p, ok := byID[row.ProductID]; ok {
			line.Title = p.Title
			line.Price = p.Price
			line.Image = p.Images.First()
		}
		cart.Items = append(cart.Items, line)
	}

	return cart, nil
}

// AddItem inserts the (session, product) row with quantity 1, or bumps the
// existing quantity by one. The upsert is a single atomic statement, so
// concurrent adds from two tabs cannot lose an increment or duplicate the
// row.
func (s *CartService) AddItem(sessionID string, productID uuid.UUID) error {
	if sessionID == "" {
		return errors.New("missing cart session")
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  1,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + 1"),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// SetQuantity updates the line's quantity. Quantities below one delegate to
// removal; zero-quantity rows are never stored.
func (s *CartService) SetQuantity(sessionID string, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(sessionID, productID)
	}

	result := s.db.Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotInCart
	}

	return nil
}

func (s *CartService) RemoveItem(sessionID string, productID uuid.UUID) error {
	if err := s.db.Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (s *CartService) Clear(sessionID string) error {
	if err := s.db.Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
