package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
)

const slugAttempts = 3

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

type EventService interface {
	List(ctx context.Context, q model.EventListQuery) ([]*model.Event, error)
	// GetBySlug only returns published events.
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Event, error)
	Create(ctx context.Context, userID uuid.UUID, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error)
	Publish(ctx context.Context, userID, eventID uuid.UUID) (*model.Event, error)
	Cancel(ctx context.Context, userID, eventID uuid.UUID) (*model.Event, error)
	AddTicketType(ctx context.Context, userID, eventID uuid.UUID, req model.CreateTicketTypeRequest) (*model.TicketType, error)
}

type EventServiceImpl struct {
	repo           repository.EventRepository
	ticketTypeRepo repository.TicketTypeRepository
	organizerRepo  repository.OrganizerRepository
}

func NewEventService(repo repository.EventRepository, ticketTypeRepo repository.TicketTypeRepository, organizerRepo repository.OrganizerRepository) EventService {
	return &EventServiceImpl{repo: repo, ticketTypeRepo: ticketTypeRepo, organizerRepo: organizerRepo}
}

// Slugify lowercases the title and joins its alphanumeric runs with dashes.
func Slugify(title string) string {
	slug := strings.Trim(slugInvalidChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if len(slug) > 80 {
		slug = strings.TrimRight(slug[:80], "-")
	}
	if slug == "" {
		return "event"
	}
	return slug
}

func (s *EventServiceImpl) List(ctx context.Context, q model.EventListQuery) ([]*model.Event, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = model.DefaultNearbyLimit
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	return s.repo.List(ctx, model.EventListFilter{
		CategorySlug: strings.TrimSpace(q.Category),
		Search:       strings.TrimSpace(q.Search),
		Featured:     q.Featured,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	})
}

func (s *EventServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished() {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *EventServiceImpl) organizerOf(ctx context.Context, userID uuid.UUID) (*model.Organizer, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	organizer, err := s.organizerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, apperrors.ErrOrganizerNotFound) {
		return nil, apperrors.ErrForbidden
	}
	return organizer, err
}

// ownedEvent loads an event and checks that the caller's organizer profile owns it.
func (s *EventServiceImpl) ownedEvent(ctx context.Context, userID, eventID uuid.UUID) (*model.Event, error) {
	organizer, err := s.organizerOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizer.ID {
		return nil, apperrors.ErrForbidden
	}
	return event, nil
}

func (s *EventServiceImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Event, error) {
	organizer, err := s.organizerOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOrganizer(ctx, organizer.ID)
}

func validateEventDates(verr *apperrors.ValidationError, startDate string, endDate *string) {
	if endDate != nil && *endDate != "" && *endDate < startDate {
		verr.Add("end_date", "end_date must not be before start_date")
	}
}

func validateLocation(verr *apperrors.ValidationError, lat, lng *float64) {
	if (lat == nil) != (lng == nil) {
		verr.Add("latitude", "latitude and longitude must be given together")
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, userID uuid.UUID, req model.CreateEventRequest) (*model.Event, error) {
	organizer, err := s.organizerOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		verr.Add("title", "title is required")
	}
	validateEventDates(verr, req.StartDate, req.EndDate)
	validateLocation(verr, req.Latitude, req.Longitude)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	params := model.CreateEventParams{
		OrganizerID:     organizer.ID,
		CategoryID:      req.CategoryID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		StartDate:       req.StartDate,
		StartTime:       req.StartTime,
		EndDate:         req.EndDate,
		EndTime:         req.EndTime,
		LocationName:    req.LocationName,
		LocationAddress: req.LocationAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Featured:        req.Featured,
	}

	base := Slugify(params.Title)
	for attempt := 0; attempt < slugAttempts; attempt++ {
		params.Slug = base
		if attempt > 0 {
			params.Slug = base + "-" + uuid.NewString()[:8]
		}
		event, err := s.repo.Create(ctx, params)
		if errors.Is(err, apperrors.ErrSlugTaken) {
			continue
		}
		return event, err
	}
	return nil, apperrors.ErrSlugTaken
}

func (s *EventServiceImpl) Update(ctx context.Context, userID, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		verr.Add("title", "title must not be empty")
	}
	startDate := event.StartDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := event.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}
	validateEventDates(verr, startDate, endDate)
	validateLocation(verr, req.Latitude, req.Longitude)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, event.ID, model.UpdateEventParams{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		StartTime:       req.StartTime,
		EndDate:         req.EndDate,
		EndTime:         req.EndTime,
		LocationName:    req.LocationName,
		LocationAddress: req.LocationAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Featured:        req.Featured,
	})
}

func (s *EventServiceImpl) transition(ctx context.Context, userID, eventID uuid.UUID, to model.EventStatus) (*model.Event, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.CanTransitionTo(to) {
		return nil, apperrors.ErrInvalidEventStatus
	}
	return s.repo.UpdateStatus(ctx, event.ID, event.Status, to)
}

func (s *EventServiceImpl) Publish(ctx context.Context, userID, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, userID, eventID, model.EventStatusPublished)
}

func (s *EventServiceImpl) Cancel(ctx context.Context, userID, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, userID, eventID, model.EventStatusCancelled)
}

func (s *EventServiceImpl) AddTicketType(ctx context.Context, userID, eventID uuid.UUID, req model.CreateTicketTypeRequest) (*model.TicketType, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == model.EventStatusCancelled {
		return nil, apperrors.ErrInvalidEventStatus
	}

	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name is required")
	}
	if req.Price.IsNegative() {
		verr.Add("price", "price must not be negative")
	}
	if req.QuantityAvailable < 0 {
		verr.Add("quantity_available", "quantity_available must not be negative")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return s.ticketTypeRepo.Create(ctx, &model.TicketType{
		EventID:           event.ID,
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
}
