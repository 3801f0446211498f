package initializers

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectToDB opens the file-backed store and hands the connection back to
// the caller for injection into the stores.
func ConnectToDB() (*gorm.DB, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "fakestore.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to %s SQLite DB", path)
	return db, nil
}
