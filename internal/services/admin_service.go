// internal/services/admin_service.go
package services

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/models"
)

// AdminService aggregates dashboard figures across the other domains.
type AdminService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalProducts      int64   `json:"total_products"`
	TotalSubmissions   int64   `json:"total_submissions"`
	PendingSubmissions int64   `json:"pending_submissions"`
	TotalUserOffers    int64   `json:"total_user_offers"`
	TotalVisitors      int64   `json:"total_visitors"`
	TotalOrders        int64   `json:"total_orders"`
	OrdersToday        int64   `json:"orders_today"`
	RevenueTotal       float64 `json:"revenue_total"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Product{}, &stats.TotalProducts},
		{&models.Submission{}, &stats.TotalSubmissions},
		{&models.UserOffer{}, &stats.TotalUserOffers},
		{&models.Visitor{}, &stats.TotalVisitors},
		{&models.Order{}, &stats.TotalOrders},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
		}
	}

	if err := s.db.Model(&models.Submission{}).
		Where("status = ?", models.SubmissionStatusPending).
		Count(&stats.PendingSubmissions).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending submissions: %w", err)
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	var revenue sql.NullFloat64
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusConfirmed).
		Select("SUM(total)").Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if revenue.Valid {
		stats.RevenueTotal = revenue.Float64
	}

	return stats, nil
}
