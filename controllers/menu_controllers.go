package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

type MenuController struct {
	Store *storage.Store
}

func NewMenuController(store *storage.Store) *MenuController {
	return &MenuController{Store: store}
}

// GetMenu returns the whole menu as {items: [...]}.
func (mc *MenuController) GetMenu(c *gin.Context) {
	menu, err := mc.Store.Menu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch menu"))
		return
	}
	c.JSON(http.StatusOK, menu)
}

// AddMenuItem appends a new item with the next free id.
func (mc *MenuController) AddMenuItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Price       *float64 `json:"price"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price == nil || req.Category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, price, and category are required"))
		return
	}
	if *req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be non-negative"))
		return
	}

	menu, err := mc.Store.Menu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add menu item"))
		return
	}

	item := models.MenuItem{
		ID:          menu.NextID(),
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   true,
	}
	menu.Items = append(menu.Items, item)

	if err := mc.Store.SaveMenu(menu); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add menu item"))
		return
	}

	utils.InfoLogger.Printf("Menu item %d added: %s", item.ID, item.Name)
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// EditMenuItem overwrites only the supplied fields. Open-order snapshots
// keep the old name and price.
func (mc *MenuController) EditMenuItem(c *gin.Context) {
	var req struct {
		ID          int      `json:"id"`
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Available   *bool    `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item ID is required"))
		return
	}

	menu, err := mc.Store.Menu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to edit menu item"))
		return
	}

	item, ok := menu.Find(req.ID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.Store.SaveMenu(menu); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to edit menu item"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": *item})
}

// DeleteMenuItem removes an item. Its id is never reused.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item ID is required"))
		return
	}

	menu, err := mc.Store.Menu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to delete menu item"))
		return
	}

	if !menu.Remove(req.ID) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := mc.Store.SaveMenu(menu); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to delete menu item"))
		return
	}

	utils.InfoLogger.Printf("Menu item %d deleted", req.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
