package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"reservation-backend/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

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
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "reservation_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema in parent->child order. Shared with the test
// harness, which runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Hotel{},
		&models.Staff{},
		&models.Customer{},
		&models.Room{},
		&models.Stay{},
		&models.ServiceType{},
		&models.ProvidedService{},
	)
}

// SeedDatabase is idempotent: service types get default costs only when the
// table is empty, and the bootstrap front-desk account is created once.
func SeedDatabase(db *gorm.DB) {
	var stCount int64
	db.Model(&models.ServiceType{}).Count(&stCount)
	if stCount == 0 {
		serviceTypes := []models.ServiceType{
			{Name: models.ServiceRoomService, Cost: decimal.NewFromInt(25)},
			{Name: models.ServiceCatering, Cost: decimal.NewFromInt(50)},
			{Name: models.ServicePhone, Cost: decimal.NewFromInt(5)},
			{Name: models.ServiceSpecialRequest, Cost: decimal.NewFromInt(15)},
		}
		if err := db.Create(&serviceTypes).Error; err != nil {
			log.Printf("warning: failed to seed service types: %v", err)
		} else {
			log.Println("Service types seeded")
		}
	}

	var accCount int64
	db.Model(&models.Account{}).Count(&accCount)
	if accCount == 0 {
		username := envOrDefault("FRONTDESK_USER", "frontdesk@hotel.local")
		password := envOrDefault("FRONTDESK_PASS", "frontdesk123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash bootstrap account password: %v", err)
			return
		}
		account := models.Account{
			FullName: "Front Desk",
			Username: username,
			Password: string(hash),
		}
		if err := db.Create(&account).Error; err != nil {
			log.Printf("warning: failed to create bootstrap account: %v", err)
		} else {
			log.Println("Bootstrap front-desk account seeded")
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

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}
