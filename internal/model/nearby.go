package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	DefaultNearbyRadius = 50000.0
	MaxNearbyRadius     = 200000.0
	DefaultNearbyLimit  = 20
	MaxNearbyLimit      = 100
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NearbyQuery holds the raw query string values of a nearby search.
type NearbyQuery struct {
	Lat      string `form:"lat"`
	Lng      string `form:"lng"`
	Radius   string `form:"radius"`
	Limit    string `form:"limit"`
	Page     string `form:"page"`
	Category string `form:"category"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// NearbySearchParams is a validated NearbyQuery.
type NearbySearchParams struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
	Limit        int
	Page         int
	Category     string
	Search       string
	DateFrom     string
	DateTo       string
}

func (p NearbySearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NearbyEventRow is one row of the geospatial ranking function.
type NearbyEventRow struct {
	ID              uuid.UUID
	OrganizerID     uuid.UUID
	CategoryID      *uuid.UUID
	Title           string
	Slug            string
	Description     *string
	StartDate       string
	StartTime       *string
	LocationName    *string
	LocationAddress *string
	Location        json.RawMessage
	Status          EventStatus
	Featured        bool
	DistanceMeters  float64
}

type NearbyEvent struct {
	Event
	DistanceMeters float64 `json:"distance_meters"`
}

type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

type NearbySearchResult struct {
	Events     []*NearbyEvent `json:"events"`
	Pagination Pagination     `json:"pagination"`
}

type GeoLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
}
