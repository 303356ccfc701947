package actdb

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mergington/signupd/pkg/actdb/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteInMemoryDSN is the DSN tests use to get a throwaway database.
// Callers must also set MaxOpenConns to 1 so every connection sees the
// same in-memory database.
const SqliteInMemoryDSN = "file::memory:"

// MakeMysqlDSNFromEnv builds the mysql DSN from the DB_* environment
// variables.
func MakeMysqlDSNFromEnv() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"))
}

const maxDBRetries = 5

// MustConnectToDB connects to the database named by the DB_ADAPTER
// environment variable ("sqlite", the default, or "mysql"). It will
// attempt the connection maxDBRetries times, sleeping 3 seconds between
// attempts, and calls log.Fatalf when the retries are exhausted.
func MustConnectToDB() *gorm.DB {
	var (
		err error
		db  *gorm.DB
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	adapter := os.Getenv("DB_ADAPTER")
	if adapter == "" {
		adapter = "sqlite"
	}

	retryCount := 1
	for {
		db, err = openAdapter(adapter, gormConfig)
		switch {
		case err == nil:
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open %s db: %s", adapter, err)
		default:
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}

func openAdapter(adapter string, gormConfig *gorm.Config) (*gorm.DB, error) {
	switch adapter {
	case "mysql":
		return gorm.Open(mysql.Open(MakeMysqlDSNFromEnv()), gormConfig)
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "signupd.db"
		}
		return gorm.Open(sqlite.Open(path), gormConfig)
	default:
		return nil, fmt.Errorf("unknown DB_ADAPTER: %s", adapter)
	}
}

// RunMigrations creates or updates the activities and participants
// tables.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(&model.Activity{}, &model.Participant{})
}
