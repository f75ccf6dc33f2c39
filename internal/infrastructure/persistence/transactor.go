package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactor creates a Transactor running units of work in GORM transactions
func NewGormTransactor(db *gorm.DB, logger logger.Logger) (shared.Transactor, error) {
	return &gormTransactor{
		db:     db,
		logger: logger,
	}, nil
}

// WithinTransaction runs fn in a transaction. A call nested inside another
// WithinTransaction joins the outer transaction.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx, t.logger)
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		log.Debug("ROLLBACK")
		return fmt.Errorf("transaction rolled back: %w", err)
	}

	log.Debug("COMMIT")
	return nil
}

// dbFromContext returns the transaction bound to ctx, or db otherwise.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
