package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-gin-event-booking/internal/geo"
	"go-gin-event-booking/internal/metrics"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type NearbyService interface {
	Search(ctx context.Context, q model.NearbyQuery) (*model.NearbySearchResult, error)
}

type NearbyServiceImpl struct {
	eventRepo repository.EventRepository
}

func NewNearbyService(eventRepo repository.EventRepository) NearbyService {
	return &NearbyServiceImpl{eventRepo: eventRepo}
}

// maxNearbyOffset is the largest row offset the nearby query accepts.
const maxNearbyOffset = math.MaxInt32

// parseFinite accepts decimal numbers only. NaN and infinities are rejected.
func parseFinite(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseNearbyQuery validates the raw query. Missing coordinates are reported on their own,
// before any other check.
func ParseNearbyQuery(q model.NearbyQuery) (model.NearbySearchParams, error) {
	params := model.NearbySearchParams{
		RadiusMeters: model.DefaultNearbyRadius,
		Limit:        model.DefaultNearbyLimit,
		Page:         1,
		Category:     strings.TrimSpace(q.Category),
		Search:       strings.TrimSpace(q.Search),
		DateFrom:     strings.TrimSpace(q.DateFrom),
		DateTo:       strings.TrimSpace(q.DateTo),
	}

	missing := &apperrors.ValidationError{}
	if strings.TrimSpace(q.Lat) == "" {
		missing.Add("lat", "lat is required")
	}
	if strings.TrimSpace(q.Lng) == "" {
		missing.Add("lng", "lng is required")
	}
	if missing.HasErrors() {
		return params, missing
	}

	verr := &apperrors.ValidationError{}

	if lat, ok := parseFinite(q.Lat); !ok {
		verr.Add("lat", "lat must be a number")
	} else if lat < -90 || lat > 90 {
		verr.Add("lat", "lat must be between -90 and 90")
	} else {
		params.Lat = lat
	}

	if lng, ok := parseFinite(q.Lng); !ok {
		verr.Add("lng", "lng must be a number")
	} else if lng < -180 || lng > 180 {
		verr.Add("lng", "lng must be between -180 and 180")
	} else {
		params.Lng = lng
	}

	if raw := strings.TrimSpace(q.Radius); raw != "" {
		radius, ok := parseFinite(raw)
		switch {
		case !ok:
			verr.Add("radius", "radius must be a number")
		case radius <= 0 || radius > model.MaxNearbyRadius:
			verr.Add("radius", fmt.Sprintf("radius must be greater than 0 and at most %d", int(model.MaxNearbyRadius)))
		default:
			params.RadiusMeters = radius
		}
	}

	if raw := strings.TrimSpace(q.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			verr.Add("limit", "limit must be an integer")
		case limit < 1 || limit > model.MaxNearbyLimit:
			verr.Add("limit", fmt.Sprintf("limit must be between 1 and %d", model.MaxNearbyLimit))
		default:
			params.Limit = limit
		}
	}

	if raw := strings.TrimSpace(q.Page); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			verr.Add("page", "page must be an integer")
		case page < 1:
			verr.Add("page", "page must be at least 1")
		case page-1 > maxNearbyOffset/params.Limit:
			verr.Add("page", fmt.Sprintf("page must be at most %d for limit %d", maxNearbyOffset/params.Limit+1, params.Limit))
		default:
			params.Page = page
		}
	}

	if params.DateFrom != "" {
		if _, err := time.Parse(dateLayout, params.DateFrom); err != nil {
			verr.Add("date_from", "date_from must be YYYY-MM-DD")
		}
	}
	if params.DateTo != "" {
		if _, err := time.Parse(dateLayout, params.DateTo); err != nil {
			verr.Add("date_to", "date_to must be YYYY-MM-DD")
		}
	}

	return params, verr.OrNil()
}

func (s *NearbyServiceImpl) Search(ctx context.Context, q model.NearbyQuery) (*model.NearbySearchResult, error) {
	params, err := ParseNearbyQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.eventRepo.FindNearby(ctx, params.Lat, params.Lng, params.RadiusMeters, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.NewUpstreamError("store", fmt.Errorf("nearby events query failed: %w", err))
	}

	if len(rows) == 0 {
		metrics.NearbySearchResults.Observe(0)
		return &model.NearbySearchResult{
			Events:     []*model.NearbyEvent{},
			Pagination: model.NewPagination(params.Page, params.Limit, 0),
		}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	related, err := s.eventRepo.FindRelationsByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewUpstreamError("store", fmt.Errorf("event relations query failed: %w", err))
	}
	byID := make(map[uuid.UUID]*model.Event, len(related))
	for _, e := range related {
		byID[e.ID] = e
	}

	events := make([]*model.NearbyEvent, 0, len(rows))
	for _, row := range rows {
		event, ok := byID[row.ID]
		if !ok {
			logger.WithComponent("service").Warn("nearby event without relations, using ranked row",
				zap.String("event_id", row.ID.String()))
			event = eventFromRow(row)
		}

		merged := &model.NearbyEvent{Event: *event, DistanceMeters: row.DistanceMeters}
		if merged.LocationCoordinates == nil {
			merged.LocationCoordinates = geo.ParseCoordinates(event.Location)
		}
		if merged.LocationCoordinates == nil {
			merged.LocationCoordinates = geo.ParseCoordinates(row.Location)
		}
		events = append(events, merged)
	}

	events = filterNearby(events, params)
	metrics.NearbySearchResults.Observe(float64(len(events)))

	return &model.NearbySearchResult{
		Events:     events,
		Pagination: model.NewPagination(params.Page, params.Limit, len(events)),
	}, nil
}

func eventFromRow(row *model.NearbyEventRow) *model.Event {
	return &model.Event{
		ID:              row.ID,
		OrganizerID:     row.OrganizerID,
		CategoryID:      row.CategoryID,
		Title:           row.Title,
		Slug:            row.Slug,
		Description:     row.Description,
		StartDate:       row.StartDate,
		StartTime:       row.StartTime,
		LocationName:    row.LocationName,
		LocationAddress: row.LocationAddress,
		Status:          row.Status,
		Featured:        row.Featured,
		Location:        row.Location,
	}
}

// filterNearby applies the page-local filters in order: category, text, date_from, date_to.
func filterNearby(events []*model.NearbyEvent, params model.NearbySearchParams) []*model.NearbyEvent {
	search := strings.ToLower(params.Search)

	out := make([]*model.NearbyEvent, 0, len(events))
	for _, e := range events {
		if params.Category != "" && (e.Category == nil || e.Category.Slug != params.Category) {
			continue
		}
		if search != "" && !matchesSearch(&e.Event, search) {
			continue
		}
		if params.DateFrom != "" && e.StartDate < params.DateFrom {
			continue
		}
		if params.DateTo != "" && e.StartDate > params.DateTo {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e *model.Event, needle string) bool {
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	if e.Description != nil && strings.Contains(strings.ToLower(*e.Description), needle) {
		return true
	}
	return e.LocationName != nil && strings.Contains(strings.ToLower(*e.LocationName), needle)
}
