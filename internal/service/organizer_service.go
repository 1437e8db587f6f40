package service

import (
	"context"
	"strings"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type OrganizerService interface {
	// Register creates the caller's organizer profile. A user has at most one.
	Register(ctx context.Context, userID uuid.UUID, req model.RegisterOrganizerRequest) (*model.Organizer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organizer, error)
	GetMine(ctx context.Context, userID uuid.UUID) (*model.Organizer, error)
	UpdateMine(ctx context.Context, userID uuid.UUID, params model.UpdateOrganizerParams) (*model.Organizer, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error)
}

type OrganizerServiceImpl struct {
	repo repository.OrganizerRepository
}

func NewOrganizerService(repo repository.OrganizerRepository) OrganizerService {
	return &OrganizerServiceImpl{repo: repo}
}

func (s *OrganizerServiceImpl) Register(ctx context.Context, userID uuid.UUID, req model.RegisterOrganizerRequest) (*model.Organizer, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, apperrors.NewValidationError("business_name", "business_name is required")
	}
	return s.repo.Create(ctx, &model.Organizer{
		UserID:             userID,
		BusinessName:       strings.TrimSpace(req.BusinessName),
		ContactEmail:       req.ContactEmail,
		Description:        req.Description,
		Website:            req.Website,
		VerificationStatus: model.VerificationPending,
	})
}

func (s *OrganizerServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Organizer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizerServiceImpl) GetMine(ctx context.Context, userID uuid.UUID) (*model.Organizer, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.repo.FindByUserID(ctx, userID)
}

func (s *OrganizerServiceImpl) UpdateMine(ctx context.Context, userID uuid.UUID, params model.UpdateOrganizerParams) (*model.Organizer, error) {
	if params.IsEmpty() {
		return nil, apperrors.NewValidationError("body", "no fields to update")
	}
	if params.BusinessName != nil && strings.TrimSpace(*params.BusinessName) == "" {
		return nil, apperrors.NewValidationError("business_name", "business_name must not be empty")
	}
	organizer, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, organizer.ID, params)
}

func (s *OrganizerServiceImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	organizer, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.DashboardStats(ctx, organizer.ID)
}
