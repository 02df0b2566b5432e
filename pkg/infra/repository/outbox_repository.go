package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ufobeep/quarantine/pkg/infra/syncgateway"
)

type OutboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) syncgateway.OutboxRepository {
	return &OutboxRepository{
		db: db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, cmd *syncgateway.Command) error {
	return r.db.WithContext(ctx).Create(cmd).Error
}

func (r *OutboxRepository) Due(ctx context.Context, now time.Time, limit int) ([]syncgateway.Command, error) {
	var commands []syncgateway.Command

	// Only the oldest undelivered command per alert is a candidate; a parked
	// command must keep its younger siblings back until it goes through.
	oldestPerAlert := r.db.Model(&syncgateway.Command{}).
		Select("MIN(id)").
		Where("delivered_at IS NULL").
		Group("alert_id")

	err := r.db.WithContext(ctx).
		Where("id IN (?)", oldestPerAlert).
		Where("next_attempt_at <= ?", now).
		Order("created_at ASC").
		Limit(limit).
		Find(&commands).Error
	if err != nil {
		return nil, err
	}
	return commands, nil
}

func (r *OutboxRepository) MarkDelivered(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&syncgateway.Command{}).
		Where("id = ?", id).
		Update("delivered_at", at).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint, nextAttempt time.Time, lastError string) error {
	return r.db.WithContext(ctx).
		Model(&syncgateway.Command{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":        gorm.Expr("attempts + 1"),
			"next_attempt_at": nextAttempt,
			"last_error":      lastError,
		}).Error
}

func (r *OutboxRepository) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&syncgateway.Command{}).
		Where("delivered_at IS NULL").
		Count(&count).Error
	return count, err
}
