package stor

import (
	"errors"

	"github.com/mergington/signupd/pkg/config"
	"gorm.io/gorm"
)

func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := config.GetIntKeyWithDefault("SIGNUPD_TX_RETRY", 3)

	if retryCount < 3 {
		retryCount = 3
	}

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		switch {
		case err == nil:
			return nil
		case isRegistryError(err):
			// Registry errors are deterministic; rerunning the
			// transaction can't change the outcome.
			return err
		}
	}

	return err
}

func isRegistryError(err error) bool {
	return errors.Is(err, ErrActivityNotFound) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrNotRegistered) ||
		errors.Is(err, ErrActivityFull)
}
