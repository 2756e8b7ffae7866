package database

import (
	"fmt"
	"testing"
	"time"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"mutation_logs",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestMutationLog inserts a mutation log row created at the given time
func CreateTestMutationLog(t *testing.T, db *DB, operation, outcome string, createdAt time.Time) *models.MutationLog {
	t.Helper()

	resource := models.MutationResourceMerchant
	if operation == models.MutationCreateTransaction {
		resource = models.MutationResourceTransaction
	}

	entry := &models.MutationLog{
		Operation: operation,
		Resource:  resource,
		Outcome:   outcome,
		CreatedAt: createdAt,
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test mutation log: %v", err)
	}

	return entry
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
