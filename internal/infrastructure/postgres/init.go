package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/filari/revenue-service/internal/config"
	"github.com/filari/revenue-service/internal/infrastructure/logger"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.RevenueConfig) *gorm.DB {
	dsn := cfg.RevenueDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PartyModel{},
		&models.BondingModel{},
		&models.ReferralEdgeModel{},
		&models.TransactionModel{},
		&logger.BreakdownComputedEvent{},
		&logger.BreakdownFailedEvent{},
	)

	return db
}
