package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/models"
)

// newTestDB opens a per-test in-memory database with the full schema.
// The named shared-cache DSN keeps gorm's pooled connections on the
// same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Hostel{},
		&models.Room{},
		&models.RoomAssignment{},
		&models.RoomRequest{},
		&models.Complaint{},
		&models.BlogPost{},
		&models.PaymentMethod{},
		&models.Donation{},
		&models.HeroContent{},
		&models.MessageSlide{},
		&models.ContactMessage{},
		&models.GalleryItem{},
	))
	return db
}

func mustCreateStudent(t *testing.T, db *gorm.DB, name string) models.Student {
	t.Helper()
	student := models.Student{
		FullName: name,
		Email:    fmt.Sprintf("%s@test.local", name),
		Password: "x",
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func mustCreateRoom(t *testing.T, db *gorm.DB, number string, capacity int) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: number,
		Capacity:   capacity,
		Status:     models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) models.Room {
	t.Helper()
	var room models.Room
	require.NoError(t, db.Preload("Assignments").First(&room, id).Error)
	return room
}
