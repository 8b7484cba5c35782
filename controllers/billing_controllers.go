package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/services"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

// GenerateBill closes a table's order out into a bill.
func (bc *BillingController) GenerateBill(c *gin.Context) {
	var req struct {
		Table         int     `json:"table"`
		DiscountType  string  `json:"discountType"`
		DiscountValue float64 `json:"discountValue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Table < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number is required"))
		return
	}

	bill, err := bc.Billing.GenerateBill(req.Table, req.DiscountType, req.DiscountValue)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	case errors.Is(err, services.ErrNoActiveOrder):
		utils.RespondError(c, http.StatusBadRequest, errors.New("no active order for this table"))
		return
	case err != nil:
		utils.ErrorLogger.Printf("Error generating bill for table %d: %v", req.Table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to generate bill"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bill": bill})
}

// GetBillForTable returns the latest bill for the table.
func (bc *BillingController) GetBillForTable(c *gin.Context) {
	table, err := strconv.Atoi(c.Query("table"))
	if err != nil || table < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number is required"))
		return
	}

	bill, err := bc.Billing.LatestBillForTable(table)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, errors.New("no bill found for this table"))
		return
	case err != nil:
		utils.ErrorLogger.Printf("Error fetching bill for table %d: %v", table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch bill"))
		return
	}
	c.JSON(http.StatusOK, bill)
}

// ViewBill renders the printable bill page for a bill id.
func (bc *BillingController) ViewBill(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("bill ID is required"))
		return
	}

	bill, err := bc.Billing.GetBill(id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, errors.New("bill not found"))
		return
	case err != nil:
		utils.ErrorLogger.Printf("Error viewing bill %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to view bill"))
		return
	}

	type lineView struct {
		Name     string
		Quantity int
		Price    string
		Total    string
	}
	lines := make([]lineView, 0, len(bill.Items))
	for _, item := range bill.Items {
		lines = append(lines, lineView{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    utils.FormatCurrency(item.Price),
			Total:    utils.FormatCurrency(item.Price * float64(item.Quantity)),
		})
	}

	c.HTML(http.StatusOK, "bill.html", gin.H{
		"ID":          bill.ID,
		"Table":       bill.Table,
		"Date":        bill.Date.Format("02/01/2006"),
		"Time":        bill.Date.Format("3:04:05 PM"),
		"Items":       lines,
		"Subtotal":    utils.FormatCurrency(bill.Subtotal),
		"HasDiscount": bill.Discount > 0,
		"Discount":    utils.FormatCurrency(bill.Discount),
		"Total":       utils.FormatCurrency(bill.Total),
	})
}
