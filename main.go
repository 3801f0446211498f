package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/initializers"
	"github.com/wanjiru-dev/fakestore-api/routes"
	"github.com/wanjiru-dev/fakestore-api/store"
	"github.com/wanjiru-dev/fakestore-api/utils"
)

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	catalog := store.NewCatalog(db)
	carts := store.NewCartStore(db)
	processor := store.NewCheckoutProcessor(db)
	ledger := store.NewOrderLedger(db)

	seedCatalog(catalog)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, catalog)
	routes.CartRoutes(server, carts)
	routes.CheckoutRoutes(server, processor)
	routes.OrderRoutes(server, ledger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Server running at http://localhost:%s", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedCatalog mirrors the external product feed into the catalog table once
// per start. A missing feed is logged and the service starts with whatever
// catalog state already exists.
func seedCatalog(catalog *store.Catalog) {
	feedURL := os.Getenv("CATALOG_FEED_URL")
	if feedURL == "" {
		feedURL = "https://fakestoreapi.com/products"
	}

	products, err := utils.FetchProducts(feedURL)
	if err != nil {
		log.Printf("Error initializing products: %v", err)
		return
	}
	if err := catalog.Sync(products); err != nil {
		log.Printf("Error initializing products: %v", err)
		return
	}
	log.Printf("Products table filled with %d feed entries", len(products))
}
