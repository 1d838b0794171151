package model

import (
	"fmt"
	"strings"
)

// SlideResult holds the descriptions extracted from one slide part.
type SlideResult struct {
	Index        int      // 1-based, matching presentation order
	Descriptions []string // document order, duplicates preserved
	Err          string   // error note when the slide XML was unparseable
}

// ExtractionResult is the full ordered, per-slide output of one extraction
// run. Slide indices are exactly 1..N ascending, one entry per slide part
// found in the package.
type ExtractionResult struct {
	Filename string
	Slides   []SlideResult
}

// SlideCount returns the number of slides in the result.
func (r *ExtractionResult) SlideCount() int {
	return len(r.Slides)
}

// DescriptionCount returns the total number of extracted descriptions
// across all slides.
func (r *ExtractionResult) DescriptionCount() int {
	var n int
	for _, s := range r.Slides {
		n += len(s.Descriptions)
	}
	return n
}

// Report renders the result as downloadable text: a header per slide in
// order, its descriptions as body lines, a blank line between slides.
// Slides without descriptions keep their header so the report's slide count
// always matches the package's. The output depends only on the receiver's
// fields, so identical results yield byte-identical reports.
func (r *ExtractionResult) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for: %s\n\n", r.Filename)
	for _, s := range r.Slides {
		fmt.Fprintf(&b, "Slide %d:\n", s.Index)
		for _, d := range s.Descriptions {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
		if s.Err != "" {
			fmt.Fprintf(&b, "  ! %s\n", s.Err)
		}
		b.WriteString("\n")
	}
	return b.String()
}
