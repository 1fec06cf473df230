package gormdb

import (
	"database/sql"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type FinishTxFunc func(*error)

func StartTx(db *gorm.DB) (*gorm.DB, FinishTxFunc, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, nil, errors.Wrap(tx.Error, "failed to start transaction")
	}

	finish := func(err *error) {
		if *err != nil {
			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				*err = errors.Wrapf(*err, "failed to rollback transaction: %s", rollbackErr)
			}
			return
		}

		if commitErr := tx.Commit().Error; commitErr != nil {
			*err = errors.Wrap(commitErr, "failed to commit transaction")
		}
	}

	return tx, finish, nil
}

func FinishTx(tx *sql.Tx, err *error) {
	if *err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			*err = errors.Wrapf(*err, "failed to rollback transaction: %s", rollbackErr)
		}
		return
	}

	if commitErr := tx.Commit(); commitErr != nil {
		*err = errors.Wrap(commitErr, "failed to commit transaction")
	}
}
