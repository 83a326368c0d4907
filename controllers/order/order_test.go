package orderControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	cartControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/cart"
	orderControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/order"
	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

type fixture struct {
	customer models.Customer
	product  models.Product
	order    models.Order
	payment  models.Payment
}

// seedOpenOrder builds a customer with one product in an open order
// and a registered payment type.
func seedOpenOrder(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	customer := models.Customer{Username: "steve", PasswordHash: "x", Email: "steve@example.com", FirstName: "Steve", LastName: "Brownlee"}
	require.NoError(t, db.Create(&customer).Error)

	category := models.Category{Name: "Sporting Goods"}
	require.NoError(t, db.Create(&category).Error)
	store := models.Store{Name: "Big Bucks", SellerID: customer.ID}
	require.NoError(t, db.Create(&store).Error)
	product := models.Product{Name: "Kite", Price: 14.99, Quantity: 60, CategoryID: category.ID, StoreID: store.ID}
	require.NoError(t, db.Create(&product).Error)

	require.Nil(t, cartControllers.AddProduct(db, customer.ID, product.ID, 1))
	var order models.Order
	require.NoError(t, db.First(&order, "customer_id = ?", customer.ID).Error)

	payment := models.Payment{MerchantName: "American Express", AccountNumber: "111-1111-1111", CustomerID: customer.ID}
	require.NoError(t, db.Create(&payment).Error)

	return fixture{customer: customer, product: product, order: order, payment: payment}
}

func TestComplete_SetsPaymentAndClosesOrder(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)

	order, appErr := orderControllers.Complete(db, fix.customer.ID, fix.order.ID, fix.payment.ID)
	require.Nil(t, appErr)
	require.NotNil(t, order.PaymentID)
	assert.Equal(t, fix.payment.ID, *order.PaymentID)
	assert.True(t, order.Completed())

	// The completed order is no longer the cart: the next add opens a
	// fresh order.
	require.Nil(t, cartControllers.AddProduct(db, fix.customer.ID, fix.product.ID, 1))
	var open models.Order
	require.NoError(t, db.First(&open, "customer_id = ? AND state = ?", fix.customer.ID, models.OrderStateOpen).Error)
	assert.NotEqual(t, fix.order.ID, open.ID)
}

func TestComplete_SecondAttemptConflicts(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)

	second := models.Payment{MerchantName: "Visa", AccountNumber: "222-2222-2222", CustomerID: fix.customer.ID}
	require.NoError(t, db.Create(&second).Error)

	_, appErr := orderControllers.Complete(db, fix.customer.ID, fix.order.ID, fix.payment.ID)
	require.Nil(t, appErr)

	_, appErr = orderControllers.Complete(db, fix.customer.ID, fix.order.ID, second.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindConflict, appErr.Kind)

	// The first payment reference is preserved unchanged.
	var stored models.Order
	require.NoError(t, db.First(&stored, fix.order.ID).Error)
	require.NotNil(t, stored.PaymentID)
	assert.Equal(t, fix.payment.ID, *stored.PaymentID)
}

func TestComplete_ConcurrentAttempts_ExactlyOneWins(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)

	second := models.Payment{MerchantName: "Visa", AccountNumber: "222-2222-2222", CustomerID: fix.customer.ID}
	require.NoError(t, db.Create(&second).Error)

	var wins, conflicts int64
	var g errgroup.Group
	for _, paymentID := range []uint{fix.payment.ID, second.ID} {
		paymentID := paymentID
		g.Go(func() error {
			_, appErr := orderControllers.Complete(db, fix.customer.ID, fix.order.ID, paymentID)
			if appErr == nil {
				atomic.AddInt64(&wins, 1)
				return nil
			}
			if appErr.Kind == httperr.KindConflict {
				atomic.AddInt64(&conflicts, 1)
				return nil
			}
			return appErr
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), wins, "exactly one completion must succeed")
	assert.Equal(t, int64(1), conflicts, "the loser must observe the conflict")
}

func TestComplete_OrderOfAnotherCustomer(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)

	other := models.Customer{Username: "anne", PasswordHash: "x", Email: "anne@example.com"}
	require.NoError(t, db.Create(&other).Error)
	payment := models.Payment{MerchantName: "Visa", AccountNumber: "333", CustomerID: other.ID}
	require.NoError(t, db.Create(&payment).Error)

	_, appErr := orderControllers.Complete(db, other.ID, fix.order.ID, payment.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
}

func TestComplete_UnknownPaymentType(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)

	_, appErr := orderControllers.Complete(db, fix.customer.ID, fix.order.ID, 999)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)

	var stored models.Order
	require.NoError(t, db.First(&stored, fix.order.ID).Error)
	assert.Equal(t, models.OrderStateOpen, stored.State)
}

func reportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reports/orders", orderControllers.PaidOrdersReport(db))
	return r
}

func TestPaidOrdersReport(t *testing.T) {
	db := openTestDB(t)
	fix := seedOpenOrder(t, db)
	r := reportRouter(db)

	// Before completion the report is empty.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/orders?status=complete", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reports []orderControllers.PaidOrderReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	assert.Empty(t, reports)

	_, appErr := orderControllers.Complete(db, fix.customer.ID, fix.order.ID, fix.payment.ID)
	require.Nil(t, appErr)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/orders?status=complete", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, fix.order.ID, reports[0].OrderID)
	assert.Equal(t, "Steve Brownlee", reports[0].Customer)
	assert.Equal(t, "American Express", reports[0].MerchantName)
	assert.Equal(t, 1, reports[0].ItemCount)
	assert.InDelta(t, 14.99, reports[0].Total, 0.001)
}

func TestPaidOrdersReport_InvalidStatus(t *testing.T) {
	db := openTestDB(t)
	r := reportRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/orders?status=pending", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
