package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds everything the portal needs at runtime. Populated once at
// startup from the environment (.env supported for development).
type Config struct {
	Port           string
	StorageBackend string  // "json", "sqlite" or "postgres"
	LedgerPath     string  // json backend only
	DB             *sql.DB // sql backends only

	JWTSecret string
	Bursar    BursarAccount
	School    SchoolInfo
	Currency  CurrencyInfo
	SMTP      SMTPConfig
}

// BursarAccount is the single configured bursar login. Deliberately a
// config entry rather than a users table: the portal has exactly one
// finance principal and the auth collaborator owns everything else.
type BursarAccount struct {
	Email        string
	PasswordHash string // bcrypt
	FirstName    string
	LastName     string
}

type SchoolInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type CurrencyInfo struct {
	Symbol string // "₦"
	Code   string // "NGN"
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

var AppConfig *Config

// Init loads the environment and opens the database connection when a SQL
// backend is selected.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		StorageBackend: getenv("STORAGE_BACKEND", "json"),
		LedgerPath:     getenv("LEDGER_PATH", "data/payments.json"),
		JWTSecret:      getenv("JWT_SECRET", "fcs-portal-secret-key"),
		Bursar: BursarAccount{
			Email: getenv("BURSAR_EMAIL", "bursar@franciscancatholicschool.edu.ng"),
			// Development default is the bcrypt hash of "password".
			PasswordHash: getenv("BURSAR_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			FirstName:    getenv("BURSAR_FIRST_NAME", "Adaeze"),
			LastName:     getenv("BURSAR_LAST_NAME", "Okafor"),
		},
		School: SchoolInfo{
			Name:    getenv("SCHOOL_NAME", "Franciscan Catholic School"),
			Address: getenv("SCHOOL_ADDRESS", "6 Friary Road, Enugu, Nigeria"),
			Phone:   getenv("SCHOOL_PHONE", "+234 803 555 0146"),
			Email:   getenv("SCHOOL_EMAIL", "bursary@franciscancatholicschool.edu.ng"),
		},
		Currency: CurrencyInfo{
			Symbol: getenv("CURRENCY_SYMBOL", "₦"),
			Code:   getenv("CURRENCY_CODE", "NGN"),
		},
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "bursary@franciscancatholicschool.edu.ng"),
		},
	}

	switch cfg.StorageBackend {
	case "json":
		log.Printf("Using JSON ledger at %s", cfg.LedgerPath)
	case "sqlite":
		dsn := getenv("SQLITE_PATH", "data/fcs.db")
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			log.Fatal("Failed to open SQLite database:", err)
		}
		// The whole-document discipline of the JSON store applies here
		// too: one writer connection keeps mutations serialized.
		db.SetMaxOpenConns(1)
		cfg.DB = db
		log.Printf("Using SQLite ledger at %s", dsn)
	case "postgres":
		dsn := getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=fcs sslmode=disable")
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal("Failed to open database connection:", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		if err = db.Ping(); err != nil {
			log.Fatal("Cannot establish database connection:", err)
		}
		cfg.DB = db
		log.Println("Database connected successfully")
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (expected json, sqlite or postgres)", cfg.StorageBackend)
	}

	AppConfig = cfg
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
