package models

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&Unit{},
		&Customer{},
		&Project{},
		&Task{},
		&User{},
		&ProjectAssignment{},
		&TaskAssignment{},
		&TimeEntry{},
	); err != nil {
		return err
	}
	DB = db
	return nil
}
