// internal/models/cart.go
package models

import "time"

// CartItem is one line in a user's cart. A cart holds at most one line
// per product; re-adding accumulates quantity instead of duplicating.
type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart is keyed by its owning user. Quantities are not checked against
// stock at write time; stock is validated at checkout display only.
type Cart struct {
	Items []CartItem `json:"items"`
}

// FindItem returns the index of the line for productID, or -1.
func (c *Cart) FindItem(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// CartView is a cart joined with live product data for display. Lines
// whose product no longer exists are omitted.
type CartView struct {
	Items []CartViewItem `json:"items"`
}

type CartViewItem struct {
	CartItem
	Product Product `json:"product"`
}
