package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tripdesk/quotation-parser/internal/entity"
)

const sampleQuotation = `Tour Package to Bali
Duration: 5 Days / 4 Nights
For 4 Adults
Total Package Cost: Rs. 45,000

Hotel: Grand Bali Resort, Kuta

Inclusions:
- Daily breakfast at the hotel restaurant
- Airport transfers
- Sightseeing with private guide

Exclusions:
- International airfare
- Travel insurance

Itinerary
Day 1: Arrival
- Airport pickup
- Hotel check-in
Day 2: Ubud Tour
- Monkey forest visit
- Rice terrace walk
`

func TestParseSampleQuotation(t *testing.T) {
	rec := Parse(sampleQuotation)

	if rec.Destination != "Bali" {
		t.Errorf("destination = %q, want %q", rec.Destination, "Bali")
	}
	if rec.Duration != "5 Days 4 Nights" {
		t.Errorf("duration = %q, want %q", rec.Duration, "5 Days 4 Nights")
	}
	if rec.PaxCount != "4 Adults" {
		t.Errorf("paxCount = %q, want %q", rec.PaxCount, "4 Adults")
	}
	if rec.BaseCost != 45000 {
		t.Errorf("baseCost = %d, want 45000", rec.BaseCost)
	}

	wantHotel := entity.HotelEntry{Name: "Grand Bali Resort", Location: "Bali", Nights: 2, RoomType: "Standard Room"}
	if len(rec.Hotels) != 1 || rec.Hotels[0] != wantHotel {
		t.Errorf("hotels = %+v, want [%+v]", rec.Hotels, wantHotel)
	}

	wantInc := []string{
		"Daily breakfast at the hotel restaurant",
		"Airport transfers",
		"Sightseeing with private guide",
	}
	if !reflect.DeepEqual(rec.Inclusions, wantInc) {
		t.Errorf("inclusions = %v, want %v", rec.Inclusions, wantInc)
	}
	wantExc := []string{"International airfare", "Travel insurance"}
	if !reflect.DeepEqual(rec.Exclusions, wantExc) {
		t.Errorf("exclusions = %v, want %v", rec.Exclusions, wantExc)
	}

	wantItin := []entity.ItineraryDay{
		{Day: 1, Title: "Arrival", Activities: []string{"Airport pickup", "Hotel check-in"}},
		{Day: 2, Title: "Ubud Tour", Activities: []string{"Monkey forest visit", "Rice terrace walk"}},
	}
	if !reflect.DeepEqual(rec.Itinerary, wantItin) {
		t.Errorf("itinerary = %+v, want %+v", rec.Itinerary, wantItin)
	}
}

func TestParseDefaults(t *testing.T) {
	rec := Parse("nothing about travel in this text at all\njust some words")

	if rec.Destination != "Not specified" {
		t.Errorf("destination = %q, want sentinel", rec.Destination)
	}
	if rec.Duration != "Not specified" {
		t.Errorf("duration = %q, want sentinel", rec.Duration)
	}
	if rec.PaxCount != "Not specified" {
		t.Errorf("paxCount = %q, want sentinel", rec.PaxCount)
	}
	if rec.BaseCost != 0 {
		t.Errorf("baseCost = %d, want 0", rec.BaseCost)
	}
	if len(rec.Hotels) != 0 || len(rec.Inclusions) != 0 || len(rec.Exclusions) != 0 || len(rec.Itinerary) != 0 {
		t.Errorf("expected empty containers, got %+v", rec)
	}
}

func TestParseIdempotent(t *testing.T) {
	first := Parse(sampleQuotation)
	second := Parse(sampleQuotation)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse is not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestParseFirstMatchWins(t *testing.T) {
	text := strings.Join([]string{
		"Destination: Goa",
		"Tour Package to Kerala",
		"3 Days 2 Nights",
		"7 Days 6 Nights",
		"2 Adults",
		"6 Adults",
	}, "\n")
	rec := Parse(text)

	if rec.Destination != "Goa" {
		t.Errorf("destination = %q, want first match %q", rec.Destination, "Goa")
	}
	if rec.Duration != "3 Days 2 Nights" {
		t.Errorf("duration = %q, want first match", rec.Duration)
	}
	if rec.PaxCount != "2 Adults" {
		t.Errorf("paxCount = %q, want first match", rec.PaxCount)
	}
}

func TestParseCostMaxWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "largest candidate wins regardless of order",
			text: "Total: Rs. 52,500\nCost per head: 12,000\nAmount due: 8,750",
			want: 52500,
		},
		{
			name: "later larger value replaces earlier",
			text: "Price: 9,500\nTotal Package Cost: Rs. 45,000",
			want: 45000,
		},
		{
			name: "candidates at or below the floor are ignored",
			text: "Total rooms price: 1,000\nCost: 950",
			want: 0,
		},
		{
			name: "ungrouped figures do not match",
			text: "Total cost: 45000",
			want: 0,
		},
		{
			name: "no cost cue means no match",
			text: "Deposit 45,000 payable on arrival",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text).BaseCost; got != tt.want {
				t.Errorf("baseCost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseHotelDedupAndDefaults(t *testing.T) {
	text := strings.Join([]string{
		"Hotel: Sunrise Beach Resort, Candidasa",
		"Hotel: Sunrise Beach Resort, Candidasa",
		"Hotel: Mountain View Lodge",
	}, "\n")
	rec := Parse(text)

	if len(rec.Hotels) != 2 {
		t.Fatalf("len(hotels) = %d, want 2: %+v", len(rec.Hotels), rec.Hotels)
	}
	for _, h := range rec.Hotels {
		if h.Nights != 2 {
			t.Errorf("hotel %q nights = %d, want fixed default 2", h.Name, h.Nights)
		}
		if h.RoomType != "Standard Room" {
			t.Errorf("hotel %q roomType = %q, want fixed default", h.Name, h.RoomType)
		}
		if h.Location != "Not specified" {
			t.Errorf("hotel %q location = %q, want sentinel when no destination seen", h.Name, h.Location)
		}
	}
}

func TestParseSectionAccumulation(t *testing.T) {
	text := strings.Join([]string{
		"Inclusions:",
		"- Breakfast",
		"* Airport transfers both ways",
		"• Guide",
		"ok", // no bullet and too short: skipped
		"Complimentary welcome drink on arrival", // long enough without bullet
		"- Breakfast",                            // duplicate
		"Exclusions:",
		"- Visa fees",
	}, "\n")
	rec := Parse(text)

	wantInc := []string{
		"Breakfast",
		"Airport transfers both ways",
		"Guide",
		"Complimentary welcome drink on arrival",
	}
	if !reflect.DeepEqual(rec.Inclusions, wantInc) {
		t.Errorf("inclusions = %v, want %v", rec.Inclusions, wantInc)
	}
	if !reflect.DeepEqual(rec.Exclusions, []string{"Visa fees"}) {
		t.Errorf("exclusions = %v, want [Visa fees]", rec.Exclusions)
	}
}

func TestParseSectionHeaderNotAccumulated(t *testing.T) {
	rec := Parse("Package Inclusions and Exclusions listed below\n- First actual item here")
	for _, item := range append(rec.Inclusions, rec.Exclusions...) {
		if strings.Contains(strings.ToLower(item), "inclusions") {
			t.Errorf("section header leaked into items: %q", item)
		}
	}
}

func TestParseSectionSwitchOnEmbeddedKeyword(t *testing.T) {
	// Section detection is substring-based, so any line mentioning
	// "itinerary" moves accumulation out of the inclusions list.
	text := strings.Join([]string{
		"Inclusions:",
		"- Daily breakfast",
		"All transfers as per itinerary schedule",
		"- Entry tickets to monuments",
	}, "\n")
	rec := Parse(text)

	if !reflect.DeepEqual(rec.Inclusions, []string{"Daily breakfast"}) {
		t.Errorf("inclusions = %v, want only items before the section switch", rec.Inclusions)
	}
	if len(rec.Itinerary) != 0 {
		t.Errorf("itinerary = %+v, want empty without a day marker", rec.Itinerary)
	}
}

func TestParseItinerary(t *testing.T) {
	text := strings.Join([]string{
		"Itinerary:",
		"Day 1: Arrival",
		"- Airport pickup",
		"- Hotel check-in",
		"Day 3 - Free day",
		"short", // exactly 5 chars: skipped
		"Beach visit in the afternoon",
		"Day 5:",
	}, "\n")
	rec := Parse(text)

	want := []entity.ItineraryDay{
		{Day: 1, Title: "Arrival", Activities: []string{"Airport pickup", "Hotel check-in"}},
		{Day: 3, Title: "Free day", Activities: []string{"Beach visit in the afternoon"}},
		{Day: 5, Title: "Day 5", Activities: []string{}},
	}
	if !reflect.DeepEqual(rec.Itinerary, want) {
		t.Errorf("itinerary = %+v, want %+v", rec.Itinerary, want)
	}
}

func TestParseItineraryActivityNeedsDay(t *testing.T) {
	rec := Parse("Itinerary:\nSome introduction line before any day marker")
	if len(rec.Itinerary) != 0 {
		t.Errorf("itinerary = %+v, want empty before the first day marker", rec.Itinerary)
	}
}

func TestParsePaxVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"4 Adults", "4 Adults"},
		{"for 2 adults travelling in May", "2 Adults"},
		{"Group of 10 pax", "10 Adults"},
		{"3 persons total", "3 Adults"},
	}
	for _, tt := range tests {
		if got := Parse(tt.text).PaxCount; got != tt.want {
			t.Errorf("Parse(%q).PaxCount = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestParseDurationVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"5 Days / 4 Nights", "5 Days 4 Nights"},
		{"3 days & 2 nights", "3 Days 2 Nights"},
		{"7 day - 6 night package", "7 Days 6 Nights"},
		{"10 days 9 nights", "10 Days 9 Nights"},
	}
	for _, tt := range tests {
		if got := Parse(tt.text).Duration; got != tt.want {
			t.Errorf("Parse(%q).Duration = %q, want %q", tt.text, got, tt.want)
		}
	}
}
