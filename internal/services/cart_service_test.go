// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vintagecottage/storefront/internal/models"
)

func TestCartAddItemAndFetch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "brass-lamp", 1200)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))

	cart, err := svc.FetchCart(session)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "brass-lamp", cart.Items[0].Title)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1200.0, cart.Total())
	assert.Equal(t, 1, cart.Count())
}

func TestCartAddItemIncrementsQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "oak-chair", 800)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))
	assert.NoError(t, svc.AddItem(session, product.ID))
	assert.NoError(t, svc.AddItem(session, product.ID))

	cart, err := svc.FetchCart(session)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 2400.0, cart.Total())
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)

	err := svc.AddItem(uuid.NewString(), uuid.New())
	assert.EqualError(t, err, "product not found")
}

func TestCartSessionsAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "clock", 500)

	sessionA := uuid.NewString()
	sessionB := uuid.NewString()
	assert.NoError(t, svc.AddItem(sessionA, product.ID))

	cartB, err := svc.FetchCart(sessionB)
	assert.NoError(t, err)
	assert.Empty(t, cartB.Items)
}

func TestCartSetQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "vase", 300)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))
	assert.NoError(t, svc.SetQuantity(session, product.ID, 5))

	cart, _ := svc.FetchCart(session)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 1500.0, cart.Total())
}

func TestCartSetQuantityBelowOneRemoves(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "mirror", 900)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))
	assert.NoError(t, svc.SetQuantity(session, product.ID, 0))

	cart, _ := svc.FetchCart(session)
	assert.Empty(t, cart.Items)
}

func TestCartSetQuantityMissingLine(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "chest", 2000)

	err := svc.SetQuantity(uuid.NewString(), product.ID, 2)
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCartRemoveThenReAdd(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "candelabra", 450)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))
	assert.NoError(t, svc.RemoveItem(session, product.ID))

	// Removal must free the (session, product) slot for a fresh add.
	assert.NoError(t, svc.AddItem(session, product.ID))

	cart, _ := svc.FetchCart(session)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartClear(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	a := createTestProduct(t, db, "painting", 5000)
	b := createTestProduct(t, db, "rug", 3500)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, a.ID))
	assert.NoError(t, svc.AddItem(session, b.ID))
	assert.NoError(t, svc.Clear(session))

	cart, _ := svc.FetchCart(session)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartVanishedProductRendersPlaceholder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "gramophone", 7500)

	session := uuid.NewString()
	assert.NoError(t, svc.AddItem(session, product.ID))

	// Delete the product out from under the cart row.
	assert.NoError(t, db.Unscoped().Delete(&models.Product{}, "id = ?", product.ID).Error)

	cart, err := svc.FetchCart(session)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Unknown Product", cart.Items[0].Title)
	assert.Equal(t, "/placeholder.svg", cart.Items[0].Image)
	assert.Equal(t, 0.0, cart.Items[0].Price)
}

func TestCartEmptySession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)

	cart, err := svc.FetchCart("")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
