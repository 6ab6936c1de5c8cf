// internal/services/offer_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

// OfferService covers both promotional offers (admin broadcasts) and
// user offers (buyer counter-offers on a product).
type OfferService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type CreateOfferRequest struct {
	Content string           `json:"content" validate:"required"`
	Images  models.ImageList `json:"images,omitempty"`
}

type UpdateOfferRequest struct {
	Content string           `json:"content,omitempty"`
	Images  models.ImageList `json:"images,omitempty"`
}

type CreateUserOfferRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	ContactNumber string    `json:"contact_number" validate:"required,phone"`
	Email         string    `json:"email" validate:"required,email"`
	OfferAmount   float64   `json:"offer_amount" validate:"required,min=0.01"`
	Message       string    `json:"message,omitempty"`
}

func NewOfferService(db *gorm.DB, notifications *NotificationService) *OfferService {
	return &OfferService{
		db:            db,
		notifications: notifications,
	}
}

func (s *OfferService) notify(message string, severity models.Severity, forAdmin bool) {
	if s.notifications != nil {
		s.notifications.Add(message, severity, forAdmin)
	}
}

// Promotional offers

func (s *OfferService) ListOffers(params utils.PaginationParams) ([]models.Offer, int64, error) {
	query := s.db.Model(&models.Offer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "updated_at"})
	query = utils.ApplyPagination(query, params)

	var offers []models.Offer
	if err := query.Find(&offers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch offers: %w", err)
	}

	return offers, total, nil
}

func (s *OfferService) GetOffer(id uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	if err := s.db.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("offer not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &offer, nil
}

func (s *OfferService) CreateOffer(req *CreateOfferRequest) (*models.Offer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	offer := &models.Offer{
		Content: req.Content,
		Images:  req.Images,
	}

	if err := s.db.Create(offer).Error; err != nil {
		s.notify("Failed to add offer", models.SeverityError, true)
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.notify("Offer added successfully!", models.SeveritySuccess, true)
	return offer, nil
}

func (s *OfferService) UpdateOffer(id uuid.UUID, req *UpdateOfferRequest) (*models.Offer, error) {
	var offer models.Offer
	if err := s.db.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("offer not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}

	if err := s.db.Model(&offer).Updates(updates).Error; err != nil {
		s.notify("Failed to update offer", models.SeverityError, true)
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	s.notify("Offer updated successfully!", models.SeveritySuccess, true)
	return &offer, nil
}

func (s *OfferService) DeleteOffer(id uuid.UUID) error {
	var offer models.Offer
	if err := s.db.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("offer not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&offer).Error; err != nil {
		s.notify("Failed to delete offer", models.SeverityError, true)
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	s.notify("Offer deleted successfully!", models.SeveritySuccess, true)
	return nil
}

// User offers

// CreateUserOffer records a buyer's price offer against a product. The
// product's current price and first image are stamped onto the record at
// creation time so later catalog edits don't rewrite offer history.
func (s *OfferService) CreateUserOffer(req *CreateUserOfferRequest) (*models.UserOffer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	userOffer := &models.UserOffer{
		ProductID:     product.ID,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		OfferAmount:   req.OfferAmount,
		ProductPrice:  product.Price,
		Message:       req.Message,
		Image:         product.Images.First(),
	}

	if err := s.db.Create(userOffer).Error; err != nil {
		s.notify("Failed to submit offer", models.SeverityError, false)
		return nil, fmt.Errorf("failed to create user offer: %w", err)
	}

	s.notify(fmt.Sprintf("New price offer on %s", product.Title), models.SeverityInfo, true)
	return userOffer, nil
}

func (s *OfferService) ListUserOffers(params utils.PaginationParams) ([]models.UserOffer, int64, error) {
	query := s.db.Model(&models.UserOffer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user offers: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "offer_amount"})
	query = utils.ApplyPagination(query, params)

	var userOffers []models.UserOffer
	if err := query.Preload("Product").Find(&userOffers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch user offers: %w", err)
	}

	return userOffers, total, nil
}

func (s *OfferService) DeleteUserOffer(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.UserOffer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("user offer not found")
	}
	return nil
}
