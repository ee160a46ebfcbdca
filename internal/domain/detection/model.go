// Package detection models OCR output. The detector returns annotations in
// provider order; the first one carries the aggregate text of the whole
// image, the rest are per-word regions the pipeline discards.
package detection

type Annotation struct {
	Description string
	Locale      string
}

// AggregateText returns the full-image text block, which by provider
// contract is the description of the first annotation.
func AggregateText(annotations []Annotation) string {
	if len(annotations) == 0 {
		return ""
	}

	return annotations[0].Description
}
