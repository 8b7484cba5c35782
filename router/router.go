package router

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/controllers"
	"github.com/grandhotel/restaurant-pos/middlewares"
	"github.com/grandhotel/restaurant-pos/services"
	"github.com/grandhotel/restaurant-pos/sessions"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

// SetupRouter wires every endpoint; menu mutations, bill generation and
// revenue reads sit behind the admin session middleware.
func SetupRouter(store *storage.Store, sess *sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	loadBillTemplate(r)

	authCtrl := controllers.NewAuthController(store, sess)
	menuCtrl := controllers.NewMenuController(store)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(store))
	tableCtrl := controllers.NewTableController(services.NewTableService(store))
	billingCtrl := controllers.NewBillingController(services.NewBillingService(store))
	revenueCtrl := controllers.NewRevenueController(services.NewRevenueService(store))

	api := r.Group("/api")

	api.POST("/auth/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)
	api.GET("/auth/check", authCtrl.Check)
	api.POST("/auth/logout", authCtrl.Logout)

	api.GET("/menu", menuCtrl.GetMenu)

	api.GET("/order", orderCtrl.GetOrder)
	api.POST("/order", orderCtrl.PlaceOrder)

	api.GET("/table/status", tableCtrl.GetStatus)
	api.POST("/table/set-status", tableCtrl.SetStatus)
	api.GET("/table/all", tableCtrl.GetAll)

	api.GET("/bill", billingCtrl.GetBillForTable)
	api.GET("/bill/view", billingCtrl.ViewBill)

	admin := api.Group("/")
	admin.Use(middlewares.SessionAuth(sess))
	{
		admin.POST("/menu/add", menuCtrl.AddMenuItem)
		admin.POST("/menu/edit", menuCtrl.EditMenuItem)
		admin.POST("/menu/delete", menuCtrl.DeleteMenuItem)

		admin.POST("/bill/generate", billingCtrl.GenerateBill)

		admin.GET("/revenue", revenueCtrl.GetForDate)
		admin.GET("/revenue/today", revenueCtrl.GetToday)
	}

	return r
}

// loadBillTemplate finds the printable-bill template relative to wherever
// the process runs from (repo root in production, a package directory under
// go test).
func loadBillTemplate(r *gin.Engine) {
	for _, dir := range []string{"templates", filepath.Join("..", "templates")} {
		if _, err := os.Stat(filepath.Join(dir, "bill.html")); err == nil {
			r.LoadHTMLFiles(filepath.Join(dir, "bill.html"))
			return
		}
	}
	utils.ErrorLogger.Println("bill.html template not found; /api/bill/view is unavailable")
}
