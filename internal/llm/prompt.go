package llm

import "strings"

// maxPromptChars bounds how much quotation text is sent to the model.
const maxPromptChars = 12000

// BuildSystemPrompt returns the fixed extraction instruction. It is fully
// deterministic: no request state leaks into it, so identical documents
// produce identical prompts.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a travel quotation parser for DMC documents. Return ONLY a JSON object, no prose, no markdown fences.",
		`The object must have exactly these fields: "destination" (string), "duration" (string formatted "X Days Y Nights"), "paxCount" (string formatted "X Adults"), "baseCost" (non-negative integer, total package cost), "hotels" (array of {"name","location","nights","roomType"}), "inclusions" (array of strings), "exclusions" (array of strings), "itinerary" (array of {"day","title","activities"}).`,
		`Use "Not specified" for any string the document does not state, 0 for an unknown cost, and empty arrays for missing lists.`,
		"Do not invent hotels, days, or prices that are not in the text.",
		"Keep itinerary days in the order they appear in the document.",
		"Never output null.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the extracted document text, truncated to keep
// the request bounded.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Quotation document text:\n")
	if len(text) > maxPromptChars {
		b.WriteString(text[:maxPromptChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
