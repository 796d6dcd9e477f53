package constants

// NotSpecified is the sentinel for any string field the source document
// never mentions. Absent data is never an empty string.
const NotSpecified = "Not specified"

// Fixed values used when a hotel line carries no detail of its own. These
// are extraction-rule constants, not derived from the document.
const (
	DefaultHotelNights = 2
	DefaultRoomType    = "Standard Room"
)

// CostFloor is the minimum value a matched figure must exceed to be taken
// as the package cost. Filters out room counts, pax counts and the like.
const CostFloor = 1000

// PreviewLength is how many characters of the extracted text are echoed
// back on the result for diagnostics.
const PreviewLength = 500
