// Package parser is the deterministic fallback extractor: a single
// line-oriented pass over quotation text using pattern matching and
// section-state tracking. It is used whenever model-based extraction is
// unavailable or returns something unusable, and it never fails — fields
// the text does not mention stay at their documented defaults.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tripdesk/quotation-parser/constants"
	"github.com/tripdesk/quotation-parser/internal/entity"
)

type section int

const (
	sectionNone section = iota
	sectionInclusions
	sectionExclusions
	sectionItinerary
)

var (
	reDestination = regexp.MustCompile(`(?i)(?:destination\s*[:\-]?|tour\b[^,\n]*?\bto\b|package\b[^,\n]*?\bfor\b)\s+([^,\n]+)`)
	reDuration    = regexp.MustCompile(`(?i)(\d+)\s*days?\s*[/&\-]?\s*(\d+)\s*nights?`)
	rePax         = regexp.MustCompile(`(?i)(\d+)\s*(?:adults?|pax|persons?)`)

	// Cost figures must be comma-grouped with 1-2 leading digits. Plain
	// 6+-digit figures without separators intentionally do not match.
	reCost = regexp.MustCompile(`(?i)(?:total|cost|price|amount)[^0-9\n]*?(\d{1,2}(?:,\d{2,3})+)`)

	// The name must open with a capital so prose like "breakfast at the
	// hotel restaurant" is not taken for a property name.
	reHotel  = regexp.MustCompile(`(?i:\bhotel\b)\s*[:\-]?\s*([A-Z][^,\n]*)`)
	reDay    = regexp.MustCompile(`(?i)^day\s*(\d+)\s*[:/\-]?\s*(.*)$`)
	reBullet = regexp.MustCompile(`^[-•*]\s*`)
)

// Parse extracts a QuotationRecord from plain text. It is a pure function:
// the same input always yields an identical record. Resolution policies
// differ per field and are deliberate: destination/duration/pax take the
// first match, cost takes the maximum above the floor, hotels and section
// items are deduplicated, itinerary activities attach to the most recent
// day block.
func Parse(text string) *entity.QuotationRecord {
	rec := entity.NewQuotationRecord()

	currentSection := sectionNone
	currentDay := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if rec.Destination == constants.NotSpecified {
			if m := reDestination.FindStringSubmatch(line); m != nil {
				if dest := strings.TrimSpace(m[1]); dest != "" {
					rec.Destination = dest
				}
			}
		}

		if rec.Duration == constants.NotSpecified {
			if m := reDuration.FindStringSubmatch(line); m != nil {
				days, _ := strconv.Atoi(m[1])
				nights, _ := strconv.Atoi(m[2])
				rec.Duration = strconv.Itoa(days) + " Days " + strconv.Itoa(nights) + " Nights"
			}
		}

		if rec.PaxCount == constants.NotSpecified {
			if m := rePax.FindStringSubmatch(line); m != nil {
				rec.PaxCount = m[1] + " Adults"
			}
		}

		if m := reCost.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				if v > constants.CostFloor && v > rec.BaseCost {
					rec.BaseCost = v
				}
			}
		}

		if m := reHotel.FindStringSubmatch(line); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" && !rec.HasHotel(name) {
				rec.Hotels = append(rec.Hotels, entity.HotelEntry{
					Name:     name,
					Location: rec.Destination,
					Nights:   constants.DefaultHotelNights,
					RoomType: constants.DefaultRoomType,
				})
			}
		}

		// Section headers switch state; the field rules above have already
		// seen the line, but the header itself is not accumulated.
		if s, ok := detectSection(line); ok {
			currentSection = s
			continue
		}

		switch currentSection {
		case sectionInclusions, sectionExclusions:
			if !reBullet.MatchString(line) && len(line) <= 10 {
				continue
			}
			item := strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
			if item == "" {
				continue
			}
			if currentSection == sectionInclusions {
				rec.Inclusions = appendUnique(rec.Inclusions, item)
			} else {
				rec.Exclusions = appendUnique(rec.Exclusions, item)
			}

		case sectionItinerary:
			if m := reDay.FindStringSubmatch(line); m != nil {
				day, _ := strconv.Atoi(m[1])
				title := strings.TrimSpace(m[2])
				if title == "" {
					title = "Day " + m[1]
				}
				currentDay = day
				rec.Itinerary = append(rec.Itinerary, entity.ItineraryDay{
					Day:        day,
					Title:      title,
					Activities: []string{},
				})
				continue
			}
			if currentDay > 0 && len(line) > 5 && len(rec.Itinerary) > 0 {
				if act := strings.TrimSpace(reBullet.ReplaceAllString(line, "")); act != "" {
					last := &rec.Itinerary[len(rec.Itinerary)-1]
					last.Activities = append(last.Activities, act)
				}
			}
		}
	}

	return rec
}

func detectSection(line string) (section, bool) {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "inclusion"):
		return sectionInclusions, true
	case strings.Contains(l, "exclusion"):
		return sectionExclusions, true
	case strings.Contains(l, "itinerary"):
		return sectionItinerary, true
	}
	return sectionNone, false
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}
