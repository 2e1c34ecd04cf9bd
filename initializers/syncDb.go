package initializers

import (
	"log"

	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	log.Println("Database synced successfully.")
}
