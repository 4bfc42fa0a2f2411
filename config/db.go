package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(AppConfig.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(AppConfig.DatabaseURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		AppConfig.DBUser, AppConfig.DBPass, AppConfig.DBHost, AppConfig.DBPort, AppConfig.DBName,
	)
	return dsn, nil
}

// SeedDatabase is idempotent: it only inserts what is missing.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hostel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Hero content ----------------
	var heroCount int64
	DB.Model(&models.HeroContent{}).Count(&heroCount)
	if heroCount == 0 {
		hero := models.HeroContent{
			Heading:    "Welcome to the Hostel Portal",
			Subheading: "Find a room, track your requests, stay informed.",
			ButtonText: "Browse Rooms",
			ButtonLink: "/rooms",
		}
		if err := DB.Create(&hero).Error; err != nil {
			log.Printf("warning: failed to seed hero content: %v", err)
		} else {
			log.Println("Hero content seeded")
		}
	}

	// ---------------- Payment methods ----------------
	var pmCount int64
	DB.Model(&models.PaymentMethod{}).Count(&pmCount)
	if pmCount == 0 {
		methods := []models.PaymentMethod{
			{Name: "Bank Transfer", Instruction: "Use your full name as the transfer reference."},
			{Name: "Cash", Instruction: "Pay at the hostel office during working hours."},
		}
		if err := DB.Create(&methods).Error; err != nil {
			log.Printf("warning: failed to seed payment methods: %v", err)
		} else {
			log.Println("Payment methods seeded")
		}
	}

	// ---------------- Demo data (opt-in) ----------------
	if !AppConfig.SeedDemo {
		return
	}

	var hostelCount int64
	DB.Model(&models.Hostel{}).Count(&hostelCount)
	if hostelCount == 0 {
		hostel := models.Hostel{
			Name:              "Main Campus Hostel",
			HostelCampus:      "Main",
			Block:             "A",
			Floor:             "1",
			GenderRestriction: "mixed",
		}
		if err := DB.Create(&hostel).Error; err != nil {
			log.Printf("warning: failed to seed demo hostel: %v", err)
			return
		}
		rooms := []models.Room{
			{HostelID: &hostel.ID, RoomNumber: "A-101", RoomBlock: "A", RoomFloor: "1", Capacity: 2, Price: 120},
			{HostelID: &hostel.ID, RoomNumber: "A-102", RoomBlock: "A", RoomFloor: "1", Capacity: 4, Price: 90},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed demo rooms: %v", err)
		} else {
			log.Println("Demo hostel and rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := MigrateAndSeed(DB); err != nil {
		return err
	}
	return nil
}

// MigrateAndSeed runs AutoMigrate in parent->child order and seeds
// baseline rows. Split out from ConnectDatabase so tests can run it
// against their own database handle.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(
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
	); err != nil {
		return err
	}

	if db == DB && AppConfig != nil {
		SeedDatabase()
	}
	return nil
}
