// internal/handlers/cart_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vintagecottage/storefront/internal/middleware"
	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/services"
)

type CartAPITestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	product *models.Product
}

func (suite *CartAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", suite.T().Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Product{}, &models.CartItem{}))
	suite.db = db

	suite.product = &models.Product{
		Title:       "Bronze Figurine",
		Description: "dancing figure",
		Price:       5500,
		Category:    "Decorative Accents",
		Images:      models.ImageList{"/images/figurine.jpg"},
	}
	suite.Require().NoError(db.Create(suite.product).Error)

	cartHandler := NewCartHandler(services.NewCartService(db))

	r := gin.New()
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.CartSession())
	cart := r.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productID", cartHandler.SetQuantity)
		cart.DELETE("/items/:productID", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}
	suite.router = r
}

func (suite *CartAPITestSuite) TearDownTest() {
	if suite.db != nil {
		if sqlDB, err := suite.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (suite *CartAPITestSuite) do(method, path, session string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CartAPITestSuite) TestMintsSessionWhenHeaderMissing() {
	w := suite.do("GET", "/cart", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotEmpty(suite.T(), w.Header().Get(middleware.SessionHeader))
}

func (suite *CartAPITestSuite) TestEchoesExistingSession() {
	w := suite.do("GET", "/cart", "my-session", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "my-session", w.Header().Get(middleware.SessionHeader))
}

func (suite *CartAPITestSuite) TestAddAndFetchCart() {
	session := "cart-api-session"

	w := suite.do("POST", "/cart/items", session, gin.H{"product_id": suite.product.ID})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart", session, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Header().Get("X-Cart-Degraded"))

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["count"])
	assert.Equal(suite.T(), 5500.0, data["total"])

	items := data["items"].([]interface{})
	assert.Len(suite.T(), items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(suite.T(), "Bronze Figurine", line["title"])
}

func (suite *CartAPITestSuite) TestAddUnknownProduct() {
	w := suite.do("POST", "/cart/items", "s", gin.H{"product_id": "8cf0ab58-4a2a-4b07-9c3e-000000000000"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CartAPITestSuite) TestSetQuantityAndRemove() {
	session := "qty-session"
	suite.do("POST", "/cart/items", session, gin.H{"product_id": suite.product.ID})

	w := suite.do("PUT", fmt.Sprintf("/cart/items/%s", suite.product.ID), session, gin.H{"quantity": 4})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart", session, nil)
	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(4), data["count"])

	w = suite.do("DELETE", fmt.Sprintf("/cart/items/%s", suite.product.ID), session, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart", session, nil)
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["count"])
}

func (suite *CartAPITestSuite) TestDegradedCartServesEmpty() {
	session := "degraded-session"
	suite.do("POST", "/cart/items", session, gin.H{"product_id": suite.product.ID})

	// Break the schema out from under the service.
	suite.Require().NoError(suite.db.Migrator().DropTable(&models.CartItem{}))

	w := suite.do("GET", "/cart", session, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "true", w.Header().Get("X-Cart-Degraded"))

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["count"])
	assert.Empty(suite.T(), data["items"])
}

func TestCartAPITestSuite(t *testing.T) {
	suite.Run(t, new(CartAPITestSuite))
}
