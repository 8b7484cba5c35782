package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/services"
	"github.com/grandhotel/restaurant-pos/utils"
)

type RevenueController struct {
	Revenue *services.RevenueService
}

func NewRevenueController(revenue *services.RevenueService) *RevenueController {
	return &RevenueController{Revenue: revenue}
}

// GetForDate returns one day's ledger; a day with no bills is the empty
// record, not a 404.
func (rc *RevenueController) GetForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date is required"))
		return
	}

	record, err := rc.Revenue.ForDate(date)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching revenue for %s: %v", date, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch revenue"))
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetToday returns the current calendar date's ledger.
func (rc *RevenueController) GetToday(c *gin.Context) {
	record, err := rc.Revenue.Today()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching today's revenue: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch today's revenue"))
		return
	}
	c.JSON(http.StatusOK, record)
}
