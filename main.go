package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/config"
	"github.com/grandhotel/restaurant-pos/middlewares"
	"github.com/grandhotel/restaurant-pos/router"
	"github.com/grandhotel/restaurant-pos/sessions"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	store := storage.New(cfg.DataDir)
	if err := bootstrapData(store, cfg); err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize data directory: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sess := sessions.NewStore()
	r := router.SetupRouter(store, sess)

	// 50 requests per second per IP across the whole API
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Restaurant POS listening on port %s (data dir %s)", cfg.Port, store.Root())
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// bootstrapData creates the data directory tree and seeds the default menu
// and admin credential on first run. Existing files are left untouched.
func bootstrapData(store *storage.Store, cfg config.Config) error {
	if err := store.EnsureLayout(); err != nil {
		return err
	}
	if err := store.SeedDefaultMenu(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return store.SeedAdminCredential(cfg.AdminUsername, string(hash))
}
