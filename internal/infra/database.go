package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for every relational entity. TranslateError is required so unique and check
// violations surface as gorm.ErrDuplicatedKey / ErrCheckConstraintViolated
// instead of driver-specific errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the relational schema. Also used by
// integration tests against an in-memory SQLite database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cliente{},
		&model.Mesa{},
		&model.Factura{},
		&model.Pedido{},
		&model.ItemPedido{},
		&model.Reserva{},
		&model.Contacto{},
	)
}
