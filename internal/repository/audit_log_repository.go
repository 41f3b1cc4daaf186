package repository

import (
	"context"
	"fmt"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	ListAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error)
	ListAuditLogsByLandmark(ctx context.Context, landmarkID int) ([]models.AuditLog, error)
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

func (r *auditLogRepository) ListAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count audit logs: %v", errors.ErrDatabaseError, err)
	}

	err = r.db.WithContext(ctx).
		Order("timestamp DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list audit logs: %v", errors.ErrDatabaseError, err)
	}

	return logs, total, nil
}

func (r *auditLogRepository) ListAuditLogsByLandmark(ctx context.Context, landmarkID int) ([]models.AuditLog, error) {
	var logs []models.AuditLog

	err := r.db.WithContext(ctx).
		Where("landmark_id = ?", landmarkID).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list audit logs for landmark %d: %v", errors.ErrDatabaseError, landmarkID, err)
	}
	return logs, nil
}

func (r *auditLogRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("%w: create audit log: %v", errors.ErrDatabaseError, err)
	}
	return nil
}
