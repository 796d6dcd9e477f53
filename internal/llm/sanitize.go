package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tripdesk/quotation-parser/constants"
)

// NormalizeAndSanitizeJSON
// - Strips markdown fences and leading/trailing prose around the object
// - Removes unknown keys (strict additionalProperties = false friendliness)
// - Coerces numeric-looking strings for baseCost/nights/day
// - Replaces null/empty scalar fields with their documented defaults
// - Deduplicates hotels by name and list items by content
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	body, ok := extractJSONObject(string(raw))
	if !ok {
		return nil, nil, fmt.Errorf("sanitize: no JSON object in response")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	allowed := map[string]struct{}{
		"destination": {}, "duration": {}, "paxCount": {}, "baseCost": {},
		"hotels": {}, "inclusions": {}, "exclusions": {}, "itinerary": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	for _, k := range []string{"destination", "duration", "paxCount"} {
		s, ok := m[k].(string)
		if !ok || strings.TrimSpace(s) == "" {
			if _, present := m[k]; present {
				dropped = append(dropped, k+"(reset)")
			}
			m[k] = constants.NotSpecified
		} else {
			m[k] = strings.TrimSpace(s)
		}
	}

	if cost, changed := coerceInt(m["baseCost"]); cost >= 0 {
		m["baseCost"] = cost
		if changed {
			dropped = append(dropped, "baseCost(coerced)")
		}
	} else {
		m["baseCost"] = 0
		dropped = append(dropped, "baseCost(reset)")
	}

	m["hotels"] = sanitizeHotels(m["hotels"], &dropped)
	m["inclusions"] = sanitizeStringList(m["inclusions"])
	m["exclusions"] = sanitizeStringList(m["exclusions"])
	m["itinerary"] = sanitizeItinerary(m["itinerary"], &dropped)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// extractJSONObject trims code fences and any prose surrounding the first
// balanced-looking object. Models occasionally wrap the payload despite the
// instruction not to.
func extractJSONObject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), t != float64(int(t))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		return -1, true
	default:
		return -1, true
	}
}

func sanitizeHotels(v any, dropped *[]string) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(items))
	seen := map[string]struct{}{}
	for _, it := range items {
		h, ok := it.(map[string]any)
		if !ok {
			*dropped = append(*dropped, "hotels(entry)")
			continue
		}
		name, _ := h["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			*dropped = append(*dropped, "hotels(unnamed)")
			continue
		}
		if _, dup := seen[name]; dup {
			*dropped = append(*dropped, "hotels(duplicate)")
			continue
		}
		seen[name] = struct{}{}

		loc, _ := h["location"].(string)
		if strings.TrimSpace(loc) == "" {
			loc = constants.NotSpecified
		}
		nights, _ := coerceInt(h["nights"])
		if nights < 0 {
			nights = constants.DefaultHotelNights
		}
		room, _ := h["roomType"].(string)
		if strings.TrimSpace(room) == "" {
			room = constants.DefaultRoomType
		}
		out = append(out, map[string]any{
			"name":     name,
			"location": strings.TrimSpace(loc),
			"nights":   nights,
			"roomType": strings.TrimSpace(room),
		})
	}
	return out
}

func sanitizeStringList(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(items))
	seen := map[string]struct{}{}
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sanitizeItinerary(v any, dropped *[]string) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		d, ok := it.(map[string]any)
		if !ok {
			*dropped = append(*dropped, "itinerary(entry)")
			continue
		}
		day, _ := coerceInt(d["day"])
		if day < 1 {
			*dropped = append(*dropped, "itinerary(day)")
			continue
		}
		title, _ := d["title"].(string)
		title = strings.TrimSpace(title)
		if title == "" {
			title = "Day " + strconv.Itoa(day)
		}
		out = append(out, map[string]any{
			"day":        day,
			"title":      title,
			"activities": sanitizeStringList(d["activities"]),
		})
	}
	return out
}
