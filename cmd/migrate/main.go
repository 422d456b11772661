package main

import (
	"log"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage/sqldb"
)

// Applies the payments schema to the configured SQL backend without
// starting the server. The server also migrates at boot; this exists for
// provisioning a database ahead of a deploy.
func main() {
	log.Println("Starting manual migration for payments...")

	config.Init()
	db := config.GetDB()
	if db == nil {
		log.Fatal("STORAGE_BACKEND must be sqlite or postgres to migrate")
	}
	defer db.Close()

	if err := sqldb.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
