package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feneonmalo-star/La-boutique-de-Lea/initializers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

// GetOrders lists the caller's orders, newest first.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Where("user_id = ?", currentUserID(ctx)).
		Order("created_at desc").
		Find(&orders)

	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder returns one order, scoped to the caller.
func GetOrder(ctx *gin.Context) {
	var order models.Order
	err := initializers.DB.
		Where("id = ? AND user_id = ?", ctx.Param("orderId"), currentUserID(ctx)).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "failed to fetch order")
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}
