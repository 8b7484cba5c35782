package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/services"
	"github.com/grandhotel/restaurant-pos/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GetOrder returns the table's current order, or the empty default for a
// table with no activity.
func (oc *OrderController) GetOrder(c *gin.Context) {
	table, err := strconv.Atoi(c.Query("table"))
	if err != nil || table < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number is required"))
		return
	}

	order, err := oc.Orders.GetOrder(table)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching order for table %d: %v", table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch order"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// PlaceOrder merges the requested items into the table's pending order.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		Table int                    `json:"table"`
		Items []services.ItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Table < 1 || req.Items == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number and items are required"))
		return
	}

	order, err := oc.Orders.PlaceOrder(req.Table, req.Items)
	if err != nil {
		utils.ErrorLogger.Printf("Error placing order for table %d: %v", req.Table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to place order"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
