package services

import "dushanbe-eats/entity"

// Authorization is an explicit capability decision per operation rather
// than role flags tested ad hoc at call sites.

// CanManageRestaurant reports whether the actor may mutate the restaurant's
// menu and advance its orders: admins always, owners only for their own
// restaurant.
func CanManageRestaurant(actor *entity.User, restaurantID uint) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	return actor.IsRestaurantOwner &&
		actor.RestaurantID != nil && *actor.RestaurantID == restaurantID
}

// CanViewBackoffice reports whether the actor may use the operator surface
// at all (order listings, analytics).
func CanViewBackoffice(actor *entity.User) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin || actor.IsRestaurantOwner
}
