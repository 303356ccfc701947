package stor

import (
	"fmt"
	"testing"

	"github.com/mergington/signupd/pkg/actdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(actdb.SqliteInMemoryDSN), &gorm.Config{})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)

	return db
}

func TestWithTxRetryRetriesTransientErrors(t *testing.T) {
	db := newTestDB(t)

	calls := 0
	err := WithTxRetry(db, func(tx *gorm.DB) error {
		calls++
		return fmt.Errorf("transient failure")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithTxRetryDoesNotRetryRegistryErrors(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name string
		err  error
	}{
		{name: "activity not found", err: ErrActivityNotFound},
		{name: "already registered", err: ErrAlreadyRegistered},
		{name: "not registered", err: ErrNotRegistered},
		{name: "activity full", err: ErrActivityFull},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			calls := 0
			err := WithTxRetry(db, func(tx *gorm.DB) error {
				calls++
				return test.err
			})

			assert.ErrorIs(t, err, test.err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestWithTxRetryStopsOnSuccess(t *testing.T) {
	db := newTestDB(t)

	calls := 0
	err := WithTxRetry(db, func(tx *gorm.DB) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
