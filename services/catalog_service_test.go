package services

import (
	"errors"
	"testing"

	"dushanbe-eats/entity"
)

func TestListRestaurantsFilters(t *testing.T) {
	f := newFixture(t)

	// an inactive restaurant must never surface
	hidden := entity.Restaurant{
		Name: "Закрытый Двор", CuisineType: "Таджикская", City: "Душанбе",
		Rating: 5.0, IsActive: false,
	}
	mustCreate(t, f.db, &hidden)
	// a different city stays out of the Душанбе listing
	khujand := entity.Restaurant{
		Name: "Худжанд Кебаб", CuisineType: "Таджикская", City: "Худжанд",
		Rating: 4.9, IsActive: true,
	}
	mustCreate(t, f.db, &khujand)

	got, err := f.catalog.ListRestaurants("Душанбе", "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// rating DESC puts restA (4.8) before restB (4.2)
	if got[0].ID != f.restA.ID || got[1].ID != f.restB.ID {
		t.Errorf("order = [%s %s], want [%s %s]", got[0].Name, got[1].Name, f.restA.Name, f.restB.Name)
	}

	got, err = f.catalog.ListRestaurants("Душанбе", "Американская", "")
	if err != nil {
		t.Fatalf("list cuisine: %v", err)
	}
	if len(got) != 1 || got[0].ID != f.restB.ID {
		t.Errorf("cuisine filter got %d results", len(got))
	}

	// search is a case-insensitive substring over name and description
	got, err = f.catalog.ListRestaurants("Душанбе", "", "бургер")
	if err != nil {
		t.Fatalf("list search: %v", err)
	}
	if len(got) != 1 || got[0].ID != f.restB.ID {
		t.Errorf("search got %d results", len(got))
	}

	got, err = f.catalog.ListRestaurants("Худжанд", "", "")
	if err != nil {
		t.Fatalf("list city: %v", err)
	}
	if len(got) != 1 || got[0].ID != khujand.ID {
		t.Errorf("city filter got %d results", len(got))
	}
}

func TestGetRestaurant(t *testing.T) {
	f := newFixture(t)

	r, err := f.catalog.GetRestaurant(f.restA.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Name != f.restA.Name {
		t.Errorf("name = %q, want %q", r.Name, f.restA.Name)
	}

	if _, err := f.catalog.GetRestaurant(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListMenuIncludesUnavailable(t *testing.T) {
	f := newFixture(t)

	items, err := f.catalog.ListMenu(f.restA.ID, "")
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3 (unavailable items stay listed)", len(items))
	}
	var sawUnavailable bool
	for _, it := range items {
		if it.ID == f.soup.ID && !it.IsAvailable {
			sawUnavailable = true
		}
	}
	if !sawUnavailable {
		t.Errorf("unavailable item missing from listing")
	}

	byCategory, err := f.catalog.ListMenu(f.restA.ID, "Выпечка")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != f.samsa.ID {
		t.Errorf("category filter got %d results", len(byCategory))
	}

	if _, err := f.catalog.ListMenu(9999, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown restaurant: err = %v, want ErrNotFound", err)
	}
}

func TestMenuCategoriesSorted(t *testing.T) {
	f := newFixture(t)

	cats, err := f.catalog.MenuCategories(f.restA.ID)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"Выпечка", "Горячее"}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("categories = %v, want %v", cats, want)
			break
		}
	}
}

func TestCreateRestaurantAttachesOwner(t *testing.T) {
	f := newFixture(t)

	in := &RestaurantIn{
		Name: "Ош Маркази", CuisineType: "Таджикская", City: "Куляб",
		DeliveryFee: 12,
	}
	rest, err := f.catalog.CreateRestaurant(&f.ownerA, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rest.OwnerID == nil || *rest.OwnerID != f.ownerA.ID {
		t.Errorf("owner id = %v, want %d", rest.OwnerID, f.ownerA.ID)
	}
	if !rest.IsActive {
		t.Errorf("new restaurant must default to active")
	}
	if rest.Rating != 4.5 {
		t.Errorf("rating = %v, want default 4.5", rest.Rating)
	}

	var owner entity.User
	if err := f.db.First(&owner, f.ownerA.ID).Error; err != nil {
		t.Fatalf("reload owner: %v", err)
	}
	if owner.RestaurantID == nil || *owner.RestaurantID != rest.ID {
		t.Errorf("owner not re-attached to the new restaurant")
	}

	if _, err := f.catalog.CreateRestaurant(&f.customer, in); !errors.Is(err, ErrForbidden) {
		t.Errorf("customer: err = %v, want ErrForbidden", err)
	}
}

func TestUpdateRestaurantScoping(t *testing.T) {
	f := newFixture(t)

	// give the restaurant an owner binding to verify it survives updates
	f.restA.OwnerID = &f.ownerA.ID
	if err := f.db.Save(&f.restA).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	in := &RestaurantIn{
		Name: "Плов Хаус 2.0", CuisineType: "Таджикская", City: "Душанбе",
		DeliveryFee: 20,
	}
	updated, err := f.catalog.UpdateRestaurant(&f.ownerA, f.restA.ID, in)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Плов Хаус 2.0" || updated.DeliveryFee != 20 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.OwnerID == nil || *updated.OwnerID != f.ownerA.ID {
		t.Errorf("update dropped the owner binding")
	}

	if _, err := f.catalog.UpdateRestaurant(&f.ownerB, f.restA.ID, in); !errors.Is(err, ErrForbidden) {
		t.Errorf("other owner: err = %v, want ErrForbidden", err)
	}
	if _, err := f.catalog.UpdateRestaurant(&f.admin, f.restA.ID, in); err != nil {
		t.Errorf("admin: %v", err)
	}
}

func TestMenuItemCRUDScoping(t *testing.T) {
	f := newFixture(t)

	in := &CreateMenuItemIn{
		MenuItemIn: MenuItemIn{
			Name: "Манту", Price: 45, Category: "Горячее",
		},
		RestaurantID: f.restA.ID,
	}

	if _, err := f.catalog.CreateMenuItem(&f.ownerB, in); !errors.Is(err, ErrForbidden) {
		t.Errorf("other owner create: err = %v, want ErrForbidden", err)
	}
	if _, err := f.catalog.CreateMenuItem(&f.customer, in); !errors.Is(err, ErrForbidden) {
		t.Errorf("customer create: err = %v, want ErrForbidden", err)
	}

	item, err := f.catalog.CreateMenuItem(&f.ownerA, in)
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if !item.IsAvailable {
		t.Errorf("new item must default to available")
	}

	upd := &MenuItemIn{Name: "Манту", Price: 48, Category: "Горячее"}
	if _, err := f.catalog.UpdateMenuItem(&f.ownerB, item.ID, upd); !errors.Is(err, ErrForbidden) {
		t.Errorf("other owner update: err = %v, want ErrForbidden", err)
	}
	got, err := f.catalog.UpdateMenuItem(&f.ownerA, item.ID, upd)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got.Price != 48 {
		t.Errorf("price = %v, want 48", got.Price)
	}

	if err := f.catalog.DeleteMenuItem(&f.ownerB, item.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("other owner delete: err = %v, want ErrForbidden", err)
	}
	if err := f.catalog.DeleteMenuItem(&f.admin, item.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := f.catalog.UpdateMenuItem(&f.ownerA, item.ID, upd); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted item: err = %v, want ErrNotFound", err)
	}
}

func TestMenuItemPriceValidation(t *testing.T) {
	f := newFixture(t)

	in := &CreateMenuItemIn{
		MenuItemIn:   MenuItemIn{Name: "Бесплатно", Price: 0, Category: "Акции"},
		RestaurantID: f.restA.ID,
	}
	if _, err := f.catalog.CreateMenuItem(&f.admin, in); !errors.Is(err, ErrValidation) {
		t.Errorf("create price 0: err = %v, want ErrValidation", err)
	}

	upd := &MenuItemIn{Name: "Плов", Price: -5, Category: "Горячее"}
	if _, err := f.catalog.UpdateMenuItem(&f.admin, f.pilaf.ID, upd); !errors.Is(err, ErrValidation) {
		t.Errorf("update negative price: err = %v, want ErrValidation", err)
	}
}
