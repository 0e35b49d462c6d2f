package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test. cache=shared keeps
// every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Cart{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Favorite{},
		&entity.PaymentTransaction{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fixture wires the full service graph over one test database plus a small
// seeded catalog: two restaurants, one of them owned by ownerA.
type fixture struct {
	db *gorm.DB

	auth      *AuthService
	catalog   *CatalogService
	cart      *CartService
	orders    *OrderService
	favorites *FavoriteService

	ordersRepo *repository.OrderRepository
	payments   *repository.PaymentRepository

	restA entity.Restaurant // Плов Хаус, delivery fee 15
	restB entity.Restaurant // Бургер Сити

	pilaf  entity.MenuItem // 50.0, restA
	samsa  entity.MenuItem // 30.0, restA
	soup   entity.MenuItem // 40.0, restA, unavailable
	burger entity.MenuItem // 55.0, restB

	customer entity.User
	ownerA   entity.User
	ownerB   entity.User
	admin    entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	f := &fixture{db: db}

	f.restA = entity.Restaurant{
		Name: "Плов Хаус", Description: "Национальная кухня",
		CuisineType: "Таджикская", City: "Душанбе",
		Rating: 4.8, DeliveryFee: 15, MinOrder: 50, IsActive: true,
	}
	f.restB = entity.Restaurant{
		Name: "Бургер Сити", Description: "Бургеры и картошка",
		CuisineType: "Американская", City: "Душанбе",
		Rating: 4.2, DeliveryFee: 10, IsActive: true,
	}
	mustCreate(t, db, &f.restA)
	mustCreate(t, db, &f.restB)

	f.pilaf = entity.MenuItem{
		RestaurantID: f.restA.ID, Name: "Плов", Price: 50,
		Category: "Горячее", IsAvailable: true,
	}
	f.samsa = entity.MenuItem{
		RestaurantID: f.restA.ID, Name: "Самса", Price: 30,
		Category: "Выпечка", IsAvailable: true,
	}
	f.soup = entity.MenuItem{
		RestaurantID: f.restA.ID, Name: "Шурбо", Price: 40,
		Category: "Горячее", IsAvailable: false,
	}
	f.burger = entity.MenuItem{
		RestaurantID: f.restB.ID, Name: "Чизбургер", Price: 55,
		Category: "Бургеры", IsAvailable: true,
	}
	mustCreate(t, db, &f.pilaf)
	mustCreate(t, db, &f.samsa)
	mustCreate(t, db, &f.soup)
	mustCreate(t, db, &f.burger)

	f.customer = entity.User{Name: "Али", City: "Душанбе", Email: strPtr("ali@example.com"), Password: "x"}
	mustCreate(t, db, &f.customer)

	f.ownerA = entity.User{
		Name: "Владелец А", City: "Душанбе", Email: strPtr("owner.a@example.com"),
		Password: "x", IsRestaurantOwner: true, RestaurantID: &f.restA.ID,
	}
	mustCreate(t, db, &f.ownerA)

	f.ownerB = entity.User{
		Name: "Владелец Б", City: "Душанбе", Email: strPtr("owner.b@example.com"),
		Password: "x", IsRestaurantOwner: true, RestaurantID: &f.restB.ID,
	}
	mustCreate(t, db, &f.ownerB)

	f.admin = entity.User{Name: "Админ", City: "Душанбе", Email: strPtr("admin@example.com"), Password: "x", IsAdmin: true}
	mustCreate(t, db, &f.admin)

	users := repository.NewUserRepository(db)
	rests := repository.NewRestaurantRepository(db)
	menus := repository.NewMenuRepository(db)
	carts := repository.NewCartRepository(db)
	f.ordersRepo = repository.NewOrderRepository(db)
	favs := repository.NewFavoriteRepository(db)
	f.payments = repository.NewPaymentRepository(db)

	locks := NewUserLocks()
	events := NewEventFanout()

	f.auth = NewAuthService(users, "test-secret", time.Hour)
	f.catalog = NewCatalogService(db, rests, menus, users)
	f.cart = NewCartService(db, carts, menus, rests, locks)
	f.orders = NewOrderService(db, f.ordersRepo, carts, rests, users, locks, events)
	f.favorites = NewFavoriteService(favs, rests)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}

func strPtr(s string) *string { return &s }

// fillCart loads the customer's cart with pilaf x2 and samsa x1 (130.0).
func (f *fixture) fillCart(t *testing.T) *entity.Cart {
	t.Helper()
	if _, err := f.cart.Add(f.customer.ID, &AddToCartIn{MenuItemID: f.pilaf.ID, Quantity: 2}); err != nil {
		t.Fatalf("add pilaf: %v", err)
	}
	cart, err := f.cart.Add(f.customer.ID, &AddToCartIn{MenuItemID: f.samsa.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add samsa: %v", err)
	}
	return cart
}

// checkout places an order from the customer's current cart.
func (f *fixture) checkout(t *testing.T, method string) *entity.Order {
	t.Helper()
	o, err := f.orders.Checkout(context.Background(), &f.customer, &CheckoutIn{
		DeliveryAddress: "ул. Рудаки 10",
		Phone:           "+992900000000",
		PaymentMethod:   method,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return o
}
