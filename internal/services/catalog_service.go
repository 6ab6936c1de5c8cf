// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

// CatalogService is the CRUD façade over products and submissions. Every
// mutation records a user-facing notification; creation failures propagate
// to the caller while update/delete failures are notify-and-continue at the
// notification level (the HTTP error still surfaces).
type CatalogService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type CreateProductRequest struct {
	Title       string           `json:"title" validate:"required,min=3,max=255"`
	Description string           `json:"description" validate:"required"`
	Price       float64          `json:"price" validate:"required,min=0.01"`
	Category    string           `json:"category" validate:"required,category"`
	Subject     string           `json:"subject,omitempty"`
	Images      models.ImageList `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Title       string           `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price,omitempty" validate:"omitempty,min=0.01"`
	Category    string           `json:"category,omitempty" validate:"omitempty,category"`
	Subject     string           `json:"subject,omitempty"`
	Images      models.ImageList `json:"images,omitempty"`
}

type CreateSubmissionRequest struct {
	Title       string           `json:"title" validate:"required,min=3,max=255"`
	Description string           `json:"description" validate:"required"`
	Price       float64          `json:"price" validate:"required,min=0.01"`
	Category    string           `json:"category" validate:"required,category"`
	Subject     string           `json:"subject,omitempty"`
	Images      models.ImageList `json:"images,omitempty"`
	SellerName  string           `json:"seller_name" validate:"required"`
	Phone       string           `json:"phone" validate:"required,phone"`
	Address     string           `json:"address" validate:"required"`
}

type UpdateSubmissionRequest struct {
	Title       string                  `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description string                  `json:"description,omitempty"`
	Price       float64                 `json:"price,omitempty" validate:"omitempty,min=0.01"`
	Category    string                  `json:"category,omitempty" validate:"omitempty,category"`
	Subject     string                  `json:"subject,omitempty"`
	Images      models.ImageList        `json:"images,omitempty"`
	SellerName  string                  `json:"seller_name,omitempty"`
	Phone       string                  `json:"phone,omitempty" validate:"omitempty,phone"`
	Address     string                  `json:"address,omitempty"`
	Status      models.SubmissionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

func NewCatalogService(db *gorm.DB, notifications *NotificationService) *CatalogService {
	return &CatalogService{
		db:            db,
		notifications: notifications,
	}
}

func (s *CatalogService) notify(message string, severity models.Severity, forAdmin bool) {
	if s.notifications != nil {
		s.notifications.Add(message, severity, forAdmin)
	}
}

// Products

func (s *CatalogService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" && params.Category != "All" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "price"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Subject:     req.Subject,
		Images:      req.Images,
	}

	if err := s.db.Create(product).Error; err != nil {
		s.notify("Failed to add product", models.SeverityError, true)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.notify("Product added successfully!", models.SeveritySuccess, true)
	return product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Subject != "" {
		updates["subject"] = req.Subject
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		s.notify("Failed to update product", models.SeverityError, true)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.notify("Product updated successfully!", models.SeveritySuccess, true)
	return &product, nil
}

func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		s.notify("Failed to delete product", models.SeverityError, true)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	// Orphaned cart rows would render as unknown products forever.
	s.db.Where("product_id = ?", id).Delete(&models.CartItem{})

	s.notify("Product deleted successfully!", models.SeveritySuccess, true)
	return nil
}

// Submissions

func (s *CatalogService) ListSubmissions(params utils.PaginationParams, status *models.SubmissionStatus) ([]models.Submission, int64, error) {
	query := s.db.Model(&models.Submission{})

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(seller_name) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	allowedSortFields := []string{"created_at", "submitted_at", "title", "price", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var submissions []models.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	return submissions, total, nil
}

func (s *CatalogService) GetSubmission(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("submission not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &submission, nil
}

// CreateSubmission stores a "sell your antiques" form. Status and the
// submission timestamp are stamped here unconditionally; caller-supplied
// values for either are ignored.
func (s *CatalogService) CreateSubmission(req *CreateSubmissionRequest) (*models.Submission, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	submission := &models.Submission{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Subject:     req.Subject,
		Images:      req.Images,
		SellerName:  req.SellerName,
		Phone:       req.Phone,
		Address:     req.Address,
		Status:      models.SubmissionStatusPending,
		SubmittedAt: time.Now(),
	}

	if err := s.db.Create(submission).Error; err != nil {
		s.notify("Failed to add submission", models.SeverityError, true)
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.notify("New antique submission received", models.SeverityInfo, true)
	return submission, nil
}

func (s *CatalogService) UpdateSubmission(id uuid.UUID, req *UpdateSubmissionRequest) (*models.Submission, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("submission not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Subject != "" {
		updates["subject"] = req.Subject
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.SellerName != "" {
		updates["seller_name"] = req.SellerName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if err := s.db.Model(&submission).Updates(updates).Error; err != nil {
		s.notify("Failed to update submission", models.SeverityError, true)
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	s.notify("Submission updated successfully!", models.SeveritySuccess, true)
	return &submission, nil
}

func (s *CatalogService) DeleteSubmission(id uuid.UUID) error {
	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("submission not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&submission).Error; err != nil {
		s.notify("Failed to delete submission", models.SeverityError, true)
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	s.notify("Submission deleted successfully!", models.SeveritySuccess, true)
	return nil
}

func (s *CatalogService) SetSubmissionStatus(id uuid.UUID, status models.SubmissionStatus) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("submission not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&submission).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	return &submission, nil
}

// PromoteSubmission copies a submission's listing fields into a new shop
// product. The source record is left untouched; approving it is a separate
// admin decision.
func (s *CatalogService) PromoteSubmission(id uuid.UUID) (*models.Product, error) {
	submission, err := s.GetSubmission(id)
	if err != nil {
		return nil, err
	}

	product, err := s.CreateProduct(&CreateProductRequest{
		Title:       submission.Title,
		Description: submission.Description,
		Price:       submission.Price,
		Category:    submission.Category,
		Subject:     submission.Subject,
		Images:      submission.Images,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to promote submission: %w", err)
	}

	return product, nil
}
