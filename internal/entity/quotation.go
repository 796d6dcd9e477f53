package entity

import "github.com/tripdesk/quotation-parser/constants"

// HotelEntry is one accommodation mentioned by the quotation.
type HotelEntry struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Nights   int    `json:"nights"`
	RoomType string `json:"roomType"`
}

// ItineraryDay is a single day block of the tour programme.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// QuotationRecord is the canonical structured output of the extraction
// pipeline. String fields hold the "Not specified" sentinel rather than
// an empty string when the document never mentions them; BaseCost is the
// maximum plausible monetary figure found, or 0.
type QuotationRecord struct {
	Destination string         `json:"destination"`
	Duration    string         `json:"duration"`
	PaxCount    string         `json:"paxCount"`
	BaseCost    int            `json:"baseCost"`
	Hotels      []HotelEntry   `json:"hotels"`
	Inclusions  []string       `json:"inclusions"`
	Exclusions  []string       `json:"exclusions"`
	Itinerary   []ItineraryDay `json:"itinerary"`

	// Attached by the pipeline, never requested from the model.
	FileName             string `json:"fileName,omitempty"`
	ProcessedAt          string `json:"processedAt,omitempty"`
	ExtractedTextPreview string `json:"extractedTextPreview,omitempty"`
}

// NewQuotationRecord returns a record with every field at its documented
// default, ready to be filled by a single parse pass.
func NewQuotationRecord() *QuotationRecord {
	return &QuotationRecord{
		Destination: constants.NotSpecified,
		Duration:    constants.NotSpecified,
		PaxCount:    constants.NotSpecified,
		BaseCost:    0,
		Hotels:      []HotelEntry{},
		Inclusions:  []string{},
		Exclusions:  []string{},
		Itinerary:   []ItineraryDay{},
	}
}

// HasHotel reports whether a hotel with the exact name is already recorded.
func (q *QuotationRecord) HasHotel(name string) bool {
	for _, h := range q.Hotels {
		if h.Name == name {
			return true
		}
	}
	return false
}
