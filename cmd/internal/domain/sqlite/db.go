package sqlite

import (
	"emrappt/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const MemoryDSN = "file::memory:"

// Init opens the database behind dsn, migrates the schema and, when the
// appointments table is empty, inserts seed.
func Init(dsn string, seed []*entity.Appointment) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Appointment{})
	if err != nil {
		return nil, err
	}

	// An in-memory database lives as long as its connection does.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if len(seed) == 0 {
		return db, nil
	}

	var count int64
	if err := db.Model(&entity.Appointment{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := db.Create(seed).Error; err != nil {
			return nil, err
		}
	}
	return db, nil
}
