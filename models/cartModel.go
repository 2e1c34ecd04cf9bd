package models

// CartItem holds one (user, product) pair. The unique index keeps the cart
// free of duplicate pairs; adding an existing pair increments Quantity.
type CartItem struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	UserID    string `json:"userId" gorm:"size:36;uniqueIndex:idx_cart_user_product"`
	ProductID string `json:"productId" gorm:"size:36;uniqueIndex:idx_cart_user_product"`
	Quantity  int    `json:"quantity"`
}

type CartItemAdd struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartEntry is the product-joined shape returned to the storefront.
type CartEntry struct {
	CartItemID string  `json:"cartItemId"`
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
}
