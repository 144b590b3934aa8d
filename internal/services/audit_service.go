package services

import (
	"encoding/json"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"gorm.io/datatypes"
)

type AuditService interface {
	// Record writes an audit entry best-effort; failures are logged
	// and never propagate to the operation being audited.
	Record(actorID, action, entity, entityID string, detail map[string]interface{})
	List(query *dto.AuditLogQuery) ([]models.AuditLog, int64, error)
}

type auditService struct {
	audits repositories.AuditRepository
}

func NewAuditService(audits repositories.AuditRepository) AuditService {
	return &auditService{audits: audits}
}

func (s *auditService) Record(actorID, action, entity, entityID string, detail map[string]interface{}) {
	entry := &models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = datatypes.JSON(raw)
		}
	}

	if err := s.audits.Create(entry); err != nil {
		logger.Warn("failed to write audit entry", "action", action, "actor_id", actorID, "error", err)
	}
}

func (s *auditService) List(query *dto.AuditLogQuery) ([]models.AuditLog, int64, error) {
	page, size := normalizePage(query.Page, query.Size)

	entries, total, err := s.audits.List(query.ActorID, query.Entity, page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return entries, total, nil
}
