package services

import (
	"context"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/repository"
)

type AuditLogService interface {
	ChangePublisher
	GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error)
	GetLandmarkAuditLogs(ctx context.Context, landmarkID int) ([]models.AuditLog, error)
}

type auditLogService struct {
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogService(auditLogRepo repository.AuditLogRepository) AuditLogService {
	return &auditLogService{
		auditLogRepo: auditLogRepo,
	}
}

func (s *auditLogService) GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error) {
	return s.auditLogRepo.ListAuditLogs(ctx, page, pageSize)
}

func (s *auditLogService) GetLandmarkAuditLogs(ctx context.Context, landmarkID int) ([]models.AuditLog, error) {
	return s.auditLogRepo.ListAuditLogsByLandmark(ctx, landmarkID)
}

func (s *auditLogService) PublishFavoriteChange(ctx context.Context, change models.FavoriteChange) error {
	requestID, _ := RequestIDFromContext(ctx)
	log := &models.AuditLog{
		LandmarkID: change.Landmark.ID,
		Action:     models.AuditActionSetFavorite,
		OldValue:   change.Previous,
		NewValue:   change.Landmark.IsFavorite,
		RequestID:  requestID,
		Timestamp:  change.ChangedAt,
	}
	return s.auditLogRepo.CreateAuditLog(ctx, log)
}
