package initializers

import (
	"log"

	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
