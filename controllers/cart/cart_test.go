package cartControllers_test

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	cartControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/cart"
	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared between
	// goroutines and serializes access the way a real server's pool
	// serializes rows.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) models.Customer {
	t.Helper()
	customer := models.Customer{Username: username, PasswordHash: "x", Email: username + "@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	category := models.Category{Name: "Sporting Goods " + name}
	require.NoError(t, db.Create(&category).Error)
	store := models.Store{Name: "Big Bucks " + name, SellerID: seedCustomer(t, db, "seller-"+name).ID}
	require.NoError(t, db.Create(&store).Error)
	product := models.Product{
		Name:       name,
		Price:      price,
		Quantity:   stock,
		Location:   "Pittsburgh",
		CategoryID: category.ID,
		StoreID:    store.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGetOrCreateOpenOrder_ReturnsExisting(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")

	first, appErr := cartControllers.GetOrCreateOpenOrder(db, customer.ID)
	require.Nil(t, appErr)
	second, appErr := cartControllers.GetOrCreateOpenOrder(db, customer.ID)
	require.Nil(t, appErr)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("customer_id = ? AND state = ?", customer.ID, models.OrderStateOpen).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentGetOrCreate_SingleOpenOrder(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")

	const n = 50
	ids := make(map[uint]struct{})
	var mu sync.Mutex

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			order, appErr := cartControllers.GetOrCreateOpenOrder(db, customer.ID)
			if appErr != nil {
				return appErr
			}
			mu.Lock()
			ids[order.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, ids, 1, "expected exactly one open order id")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("customer_id = ? AND state = ?", customer.ID, models.OrderStateOpen).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddProduct_RepeatAddIncrements(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")
	product := seedProduct(t, db, "Kite", 14.99, 60)

	require.Nil(t, cartControllers.AddProduct(db, customer.ID, product.ID, 1))
	require.Nil(t, cartControllers.AddProduct(db, customer.ID, product.ID, 1))

	var items []models.LineItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1, "repeat add must not duplicate the line item")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddProduct_UnknownProduct(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")

	appErr := cartControllers.AddProduct(db, customer.ID, 999, 1)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "a failed add must not create an order")
}

func TestConcurrentAddProduct_NoLostIncrements(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")
	product := seedProduct(t, db, "Kite", 14.99, 60)

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if appErr := cartControllers.AddProduct(db, customer.ID, product.ID, 1); appErr != nil {
				return appErr
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var items []models.LineItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Quantity)
}

func TestViewCart_NoOrders(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")

	doc, appErr := cartControllers.ViewCart(db, customer.ID)
	require.Nil(t, appErr)
	assert.Equal(t, 0, doc.Size)
	assert.Empty(t, doc.LineItems)
	assert.Nil(t, doc.PaymentType)
}

func TestViewCart_SizeCountsDistinctItems(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")
	kite := seedProduct(t, db, "Kite", 14.99, 60)
	ball := seedProduct(t, db, "Ball", 5.49, 10)

	// Two units of the kite, one ball: size is 2, not 3.
	require.Nil(t, cartControllers.AddProduct(db, customer.ID, kite.ID, 2))
	require.Nil(t, cartControllers.AddProduct(db, customer.ID, ball.ID, 1))

	doc, appErr := cartControllers.ViewCart(db, customer.ID)
	require.Nil(t, appErr)
	assert.Equal(t, 2, doc.Size)
	require.Len(t, doc.LineItems, 2)
	assert.Equal(t, "Kite", doc.LineItems[0].Product.Name)
	assert.Equal(t, 2, doc.LineItems[0].CartQuantity)
	assert.Equal(t, 14.99, doc.LineItems[0].Product.Price)
}

func TestRemoveProduct_LastItemKeepsOrder(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")
	product := seedProduct(t, db, "Kite", 14.99, 60)

	require.Nil(t, cartControllers.AddProduct(db, customer.ID, product.ID, 1))
	require.Nil(t, cartControllers.RemoveProduct(db, customer.ID, product.ID))

	doc, appErr := cartControllers.ViewCart(db, customer.ID)
	require.Nil(t, appErr)
	assert.Equal(t, 0, doc.Size)
	assert.Empty(t, doc.LineItems)

	// An empty cart is still an open order.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("customer_id = ? AND state = ?", customer.ID, models.OrderStateOpen).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRemoveProduct_NoOpenOrder(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")

	appErr := cartControllers.RemoveProduct(db, customer.ID, 1)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
}

func TestRemoveProduct_NotInCart(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "steve")
	kite := seedProduct(t, db, "Kite", 14.99, 60)
	ball := seedProduct(t, db, "Ball", 5.49, 10)

	require.Nil(t, cartControllers.AddProduct(db, customer.ID, kite.ID, 1))

	appErr := cartControllers.RemoveProduct(db, customer.ID, ball.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
}
