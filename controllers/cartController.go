package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/feneonmalo-star/La-boutique-de-Lea/initializers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

// GetCart lists the caller's cart with each line joined to its product.
// Lines whose product disappeared from the catalog are left out.
func GetCart(ctx *gin.Context) {
	var items []models.CartItem
	if err := initializers.DB.Where("user_id = ?", currentUserID(ctx)).Find(&items).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	entries := make([]models.CartEntry, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := initializers.DB.First(&product, "id = ?", item.ProductID).Error; err != nil {
			continue
		}
		entries = append(entries, models.CartEntry{
			CartItemID: item.ID,
			Product:    product,
			Quantity:   item.Quantity,
		})
	}

	ctx.JSON(http.StatusOK, entries)
}

// AddToCart inserts a (user, product) line or bumps the quantity of an
// existing one.
func AddToCart(ctx *gin.Context) {
	var add models.CartItemAdd
	if err := ctx.ShouldBindJSON(&add); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)

	var product models.Product
	if err := initializers.DB.First(&product, "id = ?", add.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var existing models.CartItem
	err := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, add.ProductID).
		First(&existing).Error

	if err == nil {
		existing.Quantity += add.Quantity
		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "unable to update cart item quantity")
			return
		}
		ctx.JSON(http.StatusOK, existing)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "unable to fetch cart item")
		return
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: add.ProductID,
		Quantity:  add.Quantity,
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to add item to cart")
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// RemoveFromCart deletes a single line; the ownership check keeps users out
// of each other's carts.
func RemoveFromCart(ctx *gin.Context) {
	result := initializers.DB.
		Where("id = ? AND user_id = ?", ctx.Param("cartItemId"), currentUserID(ctx)).
		Delete(&models.CartItem{})

	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to remove cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "item not found in cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "item removed from cart"})
}

// ClearCart empties the caller's cart.
func ClearCart(ctx *gin.Context) {
	if err := initializers.DB.
		Where("user_id = ?", currentUserID(ctx)).
		Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "cart cleared"})
}
