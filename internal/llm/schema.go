package llm

// BuildQuotationJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The model response must satisfy it before being accepted;
// anything else triggers the deterministic fallback.
func BuildQuotationJSONSchema() map[string]any {
	hotel := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":     map[string]any{"type": "string", "minLength": 1},
			"location": map[string]any{"type": "string", "minLength": 1},
			"nights":   map[string]any{"type": "integer", "minimum": 0},
			"roomType": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"name", "location", "nights", "roomType"},
	}

	itineraryDay := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"day":        map[string]any{"type": "integer", "minimum": 1},
			"title":      map[string]any{"type": "string", "minLength": 1},
			"activities": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"day", "title", "activities"},
	}

	props := map[string]any{
		"destination": map[string]any{"type": "string", "minLength": 1},
		"duration":    map[string]any{"type": "string", "minLength": 1},
		"paxCount":    map[string]any{"type": "string", "minLength": 1},
		"baseCost":    map[string]any{"type": "integer", "minimum": 0},
		"hotels":      map[string]any{"type": "array", "items": hotel},
		"inclusions":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"exclusions":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"itinerary":   map[string]any{"type": "array", "items": itineraryDay},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required": []string{
			"destination", "duration", "paxCount", "baseCost",
			"hotels", "inclusions", "exclusions", "itinerary",
		},
	}
}
