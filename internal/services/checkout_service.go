// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/config"
	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

// CheckoutService turns a session cart into an order. The total is always
// recomputed server-side from the merged cart; the client's displayed total
// is never trusted.
type CheckoutService struct {
	db            *gorm.DB
	carts         *CartService
	notifications *NotificationService
	config        *config.Config
}

type CheckoutRequest struct {
	Name          string               `json:"name" validate:"required"`
	Email         string               `json:"email" validate:"required,email"`
	Address       string               `json:"address" validate:"required"`
	City          string               `json:"city,omitempty"`
	State         string               `json:"state,omitempty"`
	Zip           string               `json:"zip,omitempty"`
	Phone         string               `json:"phone,omitempty" validate:"omitempty,phone"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=qr cod"`
}

type CheckoutResult struct {
	Order        *models.Order `json:"order"`
	ClientSecret string        `json:"client_secret,omitempty"`
}

var ErrCartEmpty = errors.New("cart is empty")

func NewCheckoutService(db *gorm.DB, carts *CartService, notifications *NotificationService, cfg *config.Config) *CheckoutService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &CheckoutService{
		db:            db,
		carts:         carts,
		notifications: notifications,
		config:        cfg,
	}
}

// Checkout snapshots the cart into an order and clears the cart. QR orders
// get a payment reference from the payment provider (or a simulated one
// when no provider key is configured, matching the demo QR flow); COD
// orders confirm immediately.
func (s *CheckoutService) Checkout(sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart, err := s.carts.FetchCart(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	lines := make([]map[string]interface{}, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, map[string]interface{}{
			"product_id": item.ProductID.String(),
			"title":      item.Title,
			"price":      item.Price,
			"image":      item.Image,
			"quantity":   item.Quantity,
		})
	}

	order := &models.Order{
		SessionID:     sessionID,
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		Phone:         req.Phone,
		Lines:         models.JSONB{"items": lines},
		Total:         cart.Total(),
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
	}

	var clientSecret string

	switch req.PaymentMethod {
	case models.PaymentMethodCOD:
		now := time.Now()
		order.Status = models.OrderStatusConfirmed
		order.ConfirmedAt = &now
		order.PaymentReference = fmt.Sprintf("cod_%s", uuid.New().String()[:8])
	case models.PaymentMethodQR:
		reference, secret, payErr := s.createPaymentIntent(order.Total, req.Email)
		if payErr != nil {
			return nil, payErr
		}
		order.PaymentReference = reference
		clientSecret = secret
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.Add(fmt.Sprintf("New order from %s (%.2f)", order.Name, order.Total), models.SeverityInfo, true)
	}

	return &CheckoutResult{Order: order, ClientSecret: clientSecret}, nil
}

func (s *CheckoutService) createPaymentIntent(total float64, email string) (reference, clientSecret string, err error) {
	// Without a provider key the QR flow runs in demo mode: the order is
	// created with a simulated reference and confirmed via ConfirmOrder.
	if s.config.Payment.StripeSecretKey == "" {
		return fmt.Sprintf("demo_qr_%s", uuid.New().String()[:8]), "", nil
	}

	amountInCents := int64(total * 100)
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amountInCents),
		Currency:     stripe.String("inr"),
		ReceiptEmail: stripe.String(email),
	}
	params.AddMetadata("source", "storefront_checkout")

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return pi.ID, pi.ClientSecret, nil
}

// ConfirmOrder marks a pending order paid. For demo QR references this is
// called directly after the buyer scans; for real references the payment
// state is checked with the provider first.
func (s *CheckoutService) ConfirmOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status == models.OrderStatusConfirmed {
		return &order, nil
	}

	if s.config.Payment.StripeSecretKey != "" && order.PaymentMethod == models.PaymentMethodQR {
		pi, err := paymentintent.Get(order.PaymentReference, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment status: %w", err)
		}
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			return nil, fmt.Errorf("payment not completed: %s", pi.Status)
		}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.OrderStatusConfirmed,
		"confirmed_at": &now,
	}
	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm order: %w", err)
	}

	return &order, nil
}

func (s *CheckoutService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *CheckoutService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "total", "status"})
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
