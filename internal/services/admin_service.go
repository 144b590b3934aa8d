package services

import (
	"errors"
	"time"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
)

type AnnouncementService interface {
	ListActive() ([]models.Announcement, error)
	ListAll() ([]models.Announcement, error)
	Create(actorID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Update(actorID, id string, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(actorID, id string) error
}

type announcementService struct {
	announcements repositories.AnnouncementRepository
	audit         AuditService
}

func NewAnnouncementService(announcements repositories.AnnouncementRepository, audit AuditService) AnnouncementService {
	return &announcementService{announcements: announcements, audit: audit}
}

func (s *announcementService) ListActive() ([]models.Announcement, error) {
	list, err := s.announcements.ListActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return list, nil
}

func (s *announcementService) ListAll() ([]models.Announcement, error) {
	list, err := s.announcements.ListAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return list, nil
}

func (s *announcementService) Create(actorID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{
		Title:    truncate(req.Title, 300),
		Body:     req.Body,
		IsActive: req.IsActive,
	}
	if req.IsActive {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := s.announcements.Create(a); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "announcement.create", "announcement", a.ID, nil)
	return a, nil
}

func (s *announcementService) Update(actorID, id string, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	a, err := s.announcements.FindByID(id)
	if err != nil {
		return nil, apperrors.NotFound("Announcement")
	}

	if req.Title != nil {
		a.Title = truncate(*req.Title, 300)
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
		if *req.IsActive && a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
	}

	if err := s.announcements.Update(a); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "announcement.update", "announcement", a.ID, nil)
	return a, nil
}

func (s *announcementService) Delete(actorID, id string) error {
	if err := s.announcements.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			return apperrors.NotFound("Announcement")
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "announcement.delete", "announcement", id, nil)
	return nil
}

type SupportService interface {
	CreateTicket(userID string, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	ListOwnTickets(userID string) ([]dto.TicketResponse, error)
	GetOwnTicket(id, userID string) (*dto.TicketResponse, error)

	// Admin side.
	ListTickets(status models.TicketStatus, page, size int) ([]dto.TicketResponse, int64, error)
	ReplyTicket(actorID, id string, req *dto.ReplyTicketRequest) (*dto.TicketResponse, error)

	CreateFeedback(userID string, req *dto.CreateFeedbackRequest) error
	ListFeedback(page, size int) ([]models.Feedback, int64, error)
}

type supportService struct {
	support repositories.SupportRepository
	audit   AuditService
}

func NewSupportService(support repositories.SupportRepository, audit AuditService) SupportService {
	return &supportService{support: support, audit: audit}
}

func (s *supportService) CreateTicket(userID string, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	ticket := &models.SupportTicket{
		UserID:  userID,
		Subject: truncate(req.Subject, 300),
		Body:    req.Body,
		Status:  models.TicketStatusOpen,
	}

	if err := s.support.CreateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

func (s *supportService) ListOwnTickets(userID string) ([]dto.TicketResponse, error) {
	tickets, err := s.support.ListTicketsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.NewTicketResponse(&tickets[i]))
	}
	return resp, nil
}

func (s *supportService) GetOwnTicket(id, userID string) (*dto.TicketResponse, error) {
	ticket, err := s.support.FindTicketByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Ticket")
	}
	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

func (s *supportService) ListTickets(status models.TicketStatus, page, size int) ([]dto.TicketResponse, int64, error) {
	page, size = normalizePage(page, size)

	tickets, total, err := s.support.ListTickets(status, page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.NewTicketResponse(&tickets[i]))
	}
	return resp, total, nil
}

func (s *supportService) ReplyTicket(actorID, id string, req *dto.ReplyTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := s.support.FindTicketByID(id)
	if err != nil {
		return nil, apperrors.NotFound("Ticket")
	}

	ticket.AdminReply = req.Reply
	if req.Status != "" {
		ticket.Status = models.TicketStatus(req.Status)
	} else if ticket.Status == models.TicketStatusOpen {
		ticket.Status = models.TicketStatusInProgress
	}

	if err := s.support.UpdateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "ticket.reply", "support_ticket", ticket.ID, map[string]interface{}{
		"status": ticket.Status,
	})

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

func (s *supportService) CreateFeedback(userID string, req *dto.CreateFeedbackRequest) error {
	fb := &models.Feedback{
		UserID:  userID,
		Rating:  req.Rating,
		Comment: truncate(req.Comment, 5000),
	}

	if err := s.support.CreateFeedback(fb); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *supportService) ListFeedback(page, size int) ([]models.Feedback, int64, error) {
	page, size = normalizePage(page, size)

	list, total, err := s.support.ListFeedback(page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return list, total, nil
}
