package extract

// Decoder converts a raw document buffer of one format into plain text.
// Implementations perform no semantic interpretation.
type Decoder interface {
	Decode(data []byte) (string, error)
}
