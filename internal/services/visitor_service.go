// internal/services/visitor_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

// VisitorService registers storefront visitors for the guestbook. A repeat
// registration with the same name and phone is not an error; callers get
// the existing record back with AlreadyRegistered set.
type VisitorService struct {
	db *gorm.DB
}

type RegisterVisitorRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone" validate:"required,phone"`
}

type RegisterVisitorResult struct {
	Visitor           *models.Visitor `json:"visitor"`
	AlreadyRegistered bool            `json:"already_registered"`
}

func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{db: db}
}

// Register normalizes the identity pair and inserts it, treating the unique
// constraint as the source of truth for "seen before". The pre-check keeps
// the common repeat-visit path off the error branch.
func (s *VisitorService) Register(req *RegisterVisitorRequest) (*RegisterVisitorResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	phone := strings.TrimSpace(req.Phone)

	var existing models.Visitor
	err := s.db.Where("name = ? AND phone = ?", name, phone).First(&existing).Error
	if err == nil {
		return &RegisterVisitorResult{Visitor: &existing, AlreadyRegistered: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	visitor := &models.Visitor{Name: name, Phone: phone}
	if err := s.db.Create(visitor).Error; err != nil {
		// A concurrent insert can still beat us to the constraint.
		if isDuplicateKeyError(err) {
			if lookupErr := s.db.Where("name = ? AND phone = ?", name, phone).First(&existing).Error; lookupErr == nil {
				return &RegisterVisitorResult{Visitor: &existing, AlreadyRegistered: true}, nil
			}
			return &RegisterVisitorResult{AlreadyRegistered: true}, nil
		}
		return nil, fmt.Errorf("failed to register visitor: %w", err)
	}

	return &RegisterVisitorResult{Visitor: visitor, AlreadyRegistered: false}, nil
}

func (s *VisitorService) ListVisitors(params utils.PaginationParams) ([]models.Visitor, int64, error) {
	query := s.db.Model(&models.Visitor{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count visitors: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "name"})
	query = utils.ApplyPagination(query, params)

	var visitors []models.Visitor
	if err := query.Find(&visitors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch visitors: %w", err)
	}

	return visitors, total, nil
}

func (s *VisitorService) CountVisitors() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Visitor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count visitors: %w", err)
	}
	return count, nil
}

func isDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
