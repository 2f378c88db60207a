package infrastructure

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"resume-screener/domain"
)

// NewMySQLConnection opens the database and migrates the schema.
func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto migrate schema
	if err := db.AutoMigrate(&domain.Job{}, &domain.Resume{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	fmt.Println("✅ Connected to MySQL and migrated schema")
	return db
}
