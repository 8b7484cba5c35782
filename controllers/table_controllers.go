package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/services"
	"github.com/grandhotel/restaurant-pos/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// GetStatus returns one table's record, empty default included.
func (tc *TableController) GetStatus(c *gin.Context) {
	table, err := strconv.Atoi(c.Query("table"))
	if err != nil || table < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number is required"))
		return
	}

	order, err := tc.Tables.GetStatus(table)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching status for table %d: %v", table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch table status"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// SetStatus overwrites a table's status. Free-text statuses are accepted.
func (tc *TableController) SetStatus(c *gin.Context) {
	var req struct {
		Table  int    `json:"table"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Table < 1 || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number and status are required"))
		return
	}

	order, err := tc.Tables.SetStatus(req.Table, req.Status)
	if err != nil {
		utils.ErrorLogger.Printf("Error setting status for table %d: %v", req.Table, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to set table status"))
		return
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", req.Table, req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true, "table": order})
}

// GetAll returns one record per table 1..20, ascending.
func (tc *TableController) GetAll(c *gin.Context) {
	tables, err := tc.Tables.ListAll()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching all tables: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch tables"))
		return
	}
	c.JSON(http.StatusOK, tables)
}
