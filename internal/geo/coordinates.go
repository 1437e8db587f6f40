package geo

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"go-gin-event-booking/internal/model"
)

var wktPoint = regexp.MustCompile(`(?i)^\s*(?:SRID=\d+;)?\s*POINT\s*\(\s*(-?[0-9.eE+-]+)\s+(-?[0-9.eE+-]+)\s*\)\s*$`)

// ParseCoordinates turns a stored location into {lat,lng}.
// Accepted: "POINT(lng lat)" (note the X/Y order), or an object with lat/lng or
// latitude/longitude fields, given as a map or as JSON bytes. Anything else returns nil.
func ParseCoordinates(v any) *model.Coordinates {
	switch loc := v.(type) {
	case nil:
		return nil
	case *model.Coordinates:
		return loc
	case model.Coordinates:
		return &loc
	case *string:
		if loc == nil {
			return nil
		}
		return ParseCoordinates(*loc)
	case string:
		if c := parseWKT(loc); c != nil {
			return c
		}
		// some drivers hand jsonb back as text
		if strings.HasPrefix(strings.TrimSpace(loc), "{") {
			return ParseCoordinates([]byte(loc))
		}
		return nil
	case json.RawMessage:
		return ParseCoordinates([]byte(loc))
	case []byte:
		if len(loc) == 0 {
			return nil
		}
		var obj map[string]any
		if err := json.Unmarshal(loc, &obj); err != nil {
			var s string
			if json.Unmarshal(loc, &s) == nil {
				return parseWKT(s)
			}
			return nil
		}
		return parseObject(obj)
	case map[string]any:
		return parseObject(loc)
	case map[string]float64:
		obj := make(map[string]any, len(loc))
		for k, f := range loc {
			obj[k] = f
		}
		return parseObject(obj)
	}
	return nil
}

func parseWKT(s string) *model.Coordinates {
	m := wktPoint.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	lng, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	lat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	return &model.Coordinates{Lat: lat, Lng: lng}
}

func parseObject(obj map[string]any) *model.Coordinates {
	if lat, ok := number(obj["lat"]); ok {
		if lng, ok := number(obj["lng"]); ok {
			return &model.Coordinates{Lat: lat, Lng: lng}
		}
	}
	if lat, ok := number(obj["latitude"]); ok {
		if lng, ok := number(obj["longitude"]); ok {
			return &model.Coordinates{Lat: lat, Lng: lng}
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
