// internal/services/catalog_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

func newTestCatalog(t *testing.T) (*CatalogService, *NotificationService) {
	t.Helper()
	db := setupTestDB(t)
	notifications := NewNotificationService()
	t.Cleanup(notifications.Close)
	return NewCatalogService(db, notifications), notifications
}

func TestCreateProduct(t *testing.T) {
	svc, notifications := newTestCatalog(t)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Title:       "Victorian Writing Desk",
		Description: "Mahogany, circa 1890",
		Price:       45000,
		Category:    "Vintage Furniture",
		Images:      models.ImageList{"/images/desk.jpg"},
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "", product.ID.String())
	assert.Equal(t, "Victorian Writing Desk", product.Title)

	admin := notifications.ForAdmin()
	assert.Len(t, admin, 1)
	assert.Equal(t, "Product added successfully!", admin[0].Message)
}

func TestCreateProductRejectsBadCategory(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.CreateProduct(&CreateProductRequest{
		Title:       "Mystery Box",
		Description: "???",
		Price:       10,
		Category:    "Spaceships",
	})
	assert.Error(t, err)
}

func TestListProductsFilterAndSearch(t *testing.T) {
	svc, _ := newTestCatalog(t)

	for _, p := range []CreateProductRequest{
		{Title: "Antique Globe", Description: "1920s world globe", Price: 6000, Category: "Antique"},
		{Title: "Teak Cabinet", Description: "storage cabinet", Price: 22000, Category: "Vintage Furniture"},
		{Title: "Rosewood Cabinet", Description: "display cabinet", Price: 30000, Category: "Vintage Furniture"},
	} {
		req := p
		_, err := svc.CreateProduct(&req)
		assert.NoError(t, err)
	}

	furniture, total, err := svc.ListProducts(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc", Category: "Vintage Furniture"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, furniture, 2)

	all, total, err := svc.ListProducts(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc", Category: "All"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	matched, total, err := svc.ListProducts(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc", Search: "cabinet"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, matched, 2)
}

func TestUpdateProductPartial(t *testing.T) {
	svc, _ := newTestCatalog(t)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Title:       "Brass Telescope",
		Description: "maritime telescope",
		Price:       9000,
		Category:    "Antique",
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{Price: 9500})
	assert.NoError(t, err)

	fetched, err := svc.GetProduct(updated.ID)
	assert.NoError(t, err)
	assert.Equal(t, 9500.0, fetched.Price)
	assert.Equal(t, "Brass Telescope", fetched.Title)
}

func TestDeleteProductRemovesCartRows(t *testing.T) {
	db := setupTestDB(t)
	notifications := NewNotificationService()
	t.Cleanup(notifications.Close)
	svc := NewCatalogService(db, notifications)
	carts := NewCartService(db)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Title:       "Silver Tea Set",
		Description: "six pieces",
		Price:       15000,
		Category:    "Antique",
	})
	assert.NoError(t, err)

	session := "session-delete-test"
	assert.NoError(t, carts.AddItem(session, product.ID))
	assert.NoError(t, svc.DeleteProduct(product.ID))

	cart, err := carts.FetchCart(session)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateSubmissionForcesPendingStatus(t *testing.T) {
	svc, _ := newTestCatalog(t)

	before := time.Now().Add(-time.Second)
	submission, err := svc.CreateSubmission(&CreateSubmissionRequest{
		Title:       "Grandfather Clock",
		Description: "needs restoration",
		Price:       25000,
		Category:    "Vintage Furniture",
		SellerName:  "Asha",
		Phone:       "+919812345678",
		Address:     "12 Hill Road, Pune",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusPending, submission.Status)
	assert.True(t, submission.SubmittedAt.After(before))
}

func TestSubmissionStatusTransitions(t *testing.T) {
	svc, _ := newTestCatalog(t)

	submission, err := svc.CreateSubmission(&CreateSubmissionRequest{
		Title:       "Copper Urn",
		Description: "hand-beaten",
		Price:       4000,
		Category:    "Antique",
		SellerName:  "Ravi",
		Phone:       "+919876543210",
		Address:     "8 Lake View, Nashik",
	})
	assert.NoError(t, err)

	approved, err := svc.SetSubmissionStatus(submission.ID, models.SubmissionStatusApproved)
	assert.NoError(t, err)

	fetched, err := svc.GetSubmission(approved.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, fetched.Status)
}

func TestPromoteSubmissionCopiesWithoutConsuming(t *testing.T) {
	svc, _ := newTestCatalog(t)

	submission, err := svc.CreateSubmission(&CreateSubmissionRequest{
		Title:       "Ivory Chess Set",
		Description: "complete set with board",
		Price:       18000,
		Category:    "Antique",
		Subject:     "games",
		Images:      models.ImageList{"/images/chess.jpg"},
		SellerName:  "Meera",
		Phone:       "+919800112233",
		Address:     "3 Fort Lane, Mumbai",
	})
	assert.NoError(t, err)

	product, err := svc.PromoteSubmission(submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, submission.Title, product.Title)
	assert.Equal(t, submission.Price, product.Price)
	assert.Equal(t, submission.Images, product.Images)

	// The submission is copied, not consumed.
	still, err := svc.GetSubmission(submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusPending, still.Status)
}

func TestListSubmissionsByStatus(t *testing.T) {
	svc, _ := newTestCatalog(t)

	for i, title := range []string{"Lantern", "Typewriter", "Sextant"} {
		sub, err := svc.CreateSubmission(&CreateSubmissionRequest{
			Title:       title + " piece",
			Description: "old",
			Price:       float64(1000 * (i + 1)),
			Category:    "Antique",
			SellerName:  "Seller",
			Phone:       "+919800000000",
			Address:     "somewhere",
		})
		assert.NoError(t, err)
		if i == 0 {
			_, err = svc.SetSubmissionStatus(sub.ID, models.SubmissionStatusRejected)
			assert.NoError(t, err)
		}
	}

	pending := models.SubmissionStatusPending
	subs, total, err := svc.ListSubmissions(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc"}, &pending)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, subs, 2)
}
