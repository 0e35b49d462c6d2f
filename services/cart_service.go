package services

import (
	"errors"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"

	"gorm.io/gorm"
)

// CartService owns the per-user order draft. Mutations are serialized per
// user key and the returned cart is authoritative: the caller replaces any
// local copy with it.
type CartService struct {
	DB          *gorm.DB
	Carts       *repository.CartRepository
	Menus       *repository.MenuRepository
	Restaurants *repository.RestaurantRepository
	Locks       *UserLocks
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, rr *repository.RestaurantRepository, locks *UserLocks) *CartService {
	return &CartService{DB: db, Carts: cr, Menus: mr, Restaurants: rr, Locks: locks}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// Get returns the current cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	cart, err := s.Carts.GetOrCreate(s.DB, userID)
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}
	return cart, nil
}

// Add upserts a line for the menu item. The line price is refreshed to the
// current menu price and quantities accumulate.
//
// Cross-restaurant policy: adding from a different restaurant than the
// cart's current scope is rejected with ErrRestaurantConflict; the caller
// clears the cart explicitly and retries. The add never silently drops an
// existing cart.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	item, err := s.Menus.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrUnavailable
	}
	rest, err := s.Restaurants.FindByID(item.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		if cart.RestaurantID != 0 && cart.RestaurantID != item.RestaurantID {
			return ErrRestaurantConflict
		}
		if cart.RestaurantID == 0 {
			if err := s.Carts.SetScope(tx, cart.ID, rest); err != nil {
				return err
			}
			cart.RestaurantID = rest.ID
			cart.RestaurantName = rest.Name
		}

		return s.upsertLine(tx, cart, item, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// SetQuantity upserts the line's quantity; qty <= 0 removes the line and a
// missing line with qty <= 0 is a no-op.
func (s *CartService) SetQuantity(userID, menuItemID uint, qty int) (*entity.Cart, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		var line *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].MenuItemID == menuItemID {
				line = &cart.Items[i]
				break
			}
		}

		switch {
		case line == nil && qty <= 0:
			return nil
		case line == nil:
			// upsert of a line that was never added goes through the same
			// validation as an add
			item, err := s.Menus.FindByID(menuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if !item.IsAvailable {
				return ErrUnavailable
			}
			if cart.RestaurantID != 0 && cart.RestaurantID != item.RestaurantID {
				return ErrRestaurantConflict
			}
			if cart.RestaurantID == 0 {
				rest, err := s.Restaurants.FindByID(item.RestaurantID)
				if err != nil {
					return err
				}
				if err := s.Carts.SetScope(tx, cart.ID, rest); err != nil {
					return err
				}
			}
			return s.insertLine(tx, cart, item, qty)
		case qty <= 0:
			if err := s.Carts.DeleteItem(tx, line.ID); err != nil {
				return err
			}
			return s.recalcAfterRemoval(tx, cart, line.ID)
		default:
			line.Quantity = qty
			if err := s.Carts.SaveItem(tx, line); err != nil {
				return err
			}
			cart.Recalc()
			return s.Carts.SaveTotal(tx, cart.ID, cart.Total)
		}
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear empties the cart and detaches its restaurant scope. Idempotent.
func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Carts.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) upsertLine(tx *gorm.DB, cart *entity.Cart, item *entity.MenuItem, qty int) error {
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == item.ID {
			line := &cart.Items[i]
			line.Quantity += qty
			// stale price is replaced with the current menu price
			line.Price = item.Price
			line.Name = item.Name
			line.ImageURL = item.ImageURL
			if err := s.Carts.SaveItem(tx, line); err != nil {
				return err
			}
			cart.Recalc()
			return s.Carts.SaveTotal(tx, cart.ID, cart.Total)
		}
	}
	return s.insertLine(tx, cart, item, qty)
}

func (s *CartService) insertLine(tx *gorm.DB, cart *entity.Cart, item *entity.MenuItem, qty int) error {
	line := entity.CartItem{
		CartID:     cart.ID,
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   item.ImageURL,
		Quantity:   qty,
	}
	if err := s.Carts.CreateItem(tx, &line); err != nil {
		return err
	}
	cart.Items = append(cart.Items, line)
	cart.Recalc()
	return s.Carts.SaveTotal(tx, cart.ID, cart.Total)
}

func (s *CartService) recalcAfterRemoval(tx *gorm.DB, cart *entity.Cart, removedLineID uint) error {
	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID != removedLineID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept
	if len(cart.Items) == 0 {
		return s.Carts.ResetScope(tx, cart.ID)
	}
	cart.Recalc()
	return s.Carts.SaveTotal(tx, cart.ID, cart.Total)
}
