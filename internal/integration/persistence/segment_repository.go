// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
	"github.com/expense-segmentation/backend/internal/integration/persistence/model"
)

// segmentRepository implements the adapter.SegmentRepository interface.
//
// Mutations run inside a database transaction that takes a row lock on the
// parent expense, serializing concurrent writers of one expense's segment
// set. Serialization failures and deadlocks surface as ErrSegmentStoreConflict
// so callers can retry.
type segmentRepository struct {
	db *gorm.DB
}

// NewSegmentRepository creates a new segment repository instance.
func NewSegmentRepository(db *gorm.DB) adapter.SegmentRepository {
	return &segmentRepository{
		db: db,
	}
}

// FindByExpense retrieves all segments of an expense in creation order.
func (r *segmentRepository) FindByExpense(ctx context.Context, expenseID uuid.UUID) ([]*entity.Segment, error) {
	var segmentModels []model.SegmentModel
	result := r.db.WithContext(ctx).
		Where("expense_id = ?", expenseID).
		Order("created_at ASC, id ASC").
		Find(&segmentModels)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	segments := make([]*entity.Segment, len(segmentModels))
	for i, sm := range segmentModels {
		segments[i] = sm.ToEntity()
	}
	return segments, nil
}

// FindByExpenseAndID retrieves one segment scoped to its parent expense.
func (r *segmentRepository) FindByExpenseAndID(ctx context.Context, expenseID, segmentID uuid.UUID) (*entity.Segment, error) {
	var segmentModel model.SegmentModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND expense_id = ?", segmentID, expenseID).
		First(&segmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSegmentNotFound
		}
		return nil, translateStoreError(result.Error)
	}
	return segmentModel.ToEntity(), nil
}

// CreateIfNone inserts the given segments provided the expense currently has
// zero segments. The zero-segments check happens inside the transaction, after
// the expense row lock is held, so two concurrent first-segment creations
// cannot both succeed.
func (r *segmentRepository) CreateIfNone(ctx context.Context, expenseID uuid.UUID, segments []*entity.Segment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockExpense(tx, expenseID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.SegmentModel{}).
			Where("expense_id = ?", expenseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrSegmentsAlreadyExist
		}

		for _, seg := range segments {
			if err := tx.Create(model.SegmentFromEntity(seg)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrSegmentsAlreadyExist) {
			return err
		}
		return translateStoreError(err)
	}
	return nil
}

// ReplaceByExpense atomically discards the expense's existing segment set and
// persists the new one.
func (r *segmentRepository) ReplaceByExpense(ctx context.Context, expenseID uuid.UUID, segments []*entity.Segment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockExpense(tx, expenseID); err != nil {
			return err
		}

		if err := tx.Where("expense_id = ?", expenseID).
			Delete(&model.SegmentModel{}).Error; err != nil {
			return err
		}

		for _, seg := range segments {
			if err := tx.Create(model.SegmentFromEntity(seg)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateStoreError(err)
	}
	return nil
}

// Update persists changes to a single existing segment.
func (r *segmentRepository) Update(ctx context.Context, segment *entity.Segment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockExpense(tx, segment.ExpenseID); err != nil {
			return err
		}

		result := tx.Model(&model.SegmentModel{}).
			Where("id = ? AND expense_id = ?", segment.ID, segment.ExpenseID).
			Updates(map[string]interface{}{
				"category":   segment.Category,
				"amount":     segment.Amount,
				"percentage": segment.Percentage,
				"updated_at": segment.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSegmentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrSegmentNotFound) {
			return err
		}
		return translateStoreError(err)
	}
	return nil
}

// DeleteByExpenseAndID removes one segment. Deleting the last segment of an
// expense is permitted; the expense reverts to unsegmented.
func (r *segmentRepository) DeleteByExpenseAndID(ctx context.Context, expenseID, segmentID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockExpense(tx, expenseID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND expense_id = ?", segmentID, expenseID).
			Delete(&model.SegmentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSegmentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrSegmentNotFound) {
			return err
		}
		return translateStoreError(err)
	}
	return nil
}

// lockExpense takes a FOR UPDATE row lock on the parent expense. SQLite (used
// by the integration test harness) serializes writers at the database level,
// so the explicit lock is only issued on PostgreSQL.
func (r *segmentRepository) lockExpense(tx *gorm.DB, expenseID uuid.UUID) error {
	query := tx.Model(&model.ExpenseModel{})
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var count int64
	if err := query.Where("id = ?", expenseID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// translateStoreError maps retryable database failures to
// ErrSegmentStoreConflict and passes everything else through.
func translateStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return domainerror.ErrSegmentStoreConflict
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerror.ErrSegmentStoreConflict
	}
	return err
}
