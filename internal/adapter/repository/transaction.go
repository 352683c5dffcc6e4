package repository

import (
	"context"

	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type txKey struct{}

type transactionManager struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTransactionManager creates a unit-of-work runner over db.
func NewTransactionManager(db *gorm.DB, logger *zap.Logger) domainRepo.TransactionManager {
	return &transactionManager{
		db:     db,
		logger: logger,
	}
}

// WithinTransaction begins a transaction, commits when fn succeeds and rolls back
// on error or panic. A ctx already inside a transaction reuses it.
func (m *transactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		m.logger.Debug("Transaction rolled back", zap.Error(err))
	}
	return err
}

// conn returns the transaction carried by ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// orgScope filters by organization_id when orgID is set.
func orgScope(orgID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if orgID == nil {
			return db
		}
		return db.Where("organization_id = ?", *orgID)
	}
}
