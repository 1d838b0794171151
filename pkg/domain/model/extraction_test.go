package model_test

import (
	"testing"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
)

func TestExtractionResult_Report(t *testing.T) {
	result := &model.ExtractionResult{
		Filename: "deck.pptx",
		Slides: []model.SlideResult{
			{Index: 1, Descriptions: []string{"Picture 1", "Picture 2"}},
			{Index: 2},
			{Index: 3, Descriptions: []string{"Logo"}},
		},
	}

	want := "Report for: deck.pptx\n" +
		"\n" +
		"Slide 1:\n" +
		"  - Picture 1\n" +
		"  - Picture 2\n" +
		"\n" +
		"Slide 2:\n" +
		"\n" +
		"Slide 3:\n" +
		"  - Logo\n" +
		"\n"

	if got := result.Report(); got != want {
		t.Errorf("Report() = %q, want %q", got, want)
	}

	// Byte-identical on repeat rendering.
	if result.Report() != result.Report() {
		t.Error("Report() is not deterministic")
	}
}

func TestExtractionResult_ReportWithErrorNote(t *testing.T) {
	result := &model.ExtractionResult{
		Filename: "deck.pptx",
		Slides: []model.SlideResult{
			{Index: 1, Descriptions: []string{"Picture 1"}},
			{Index: 2, Err: "slide XML cannot be parsed"},
		},
	}

	want := "Report for: deck.pptx\n" +
		"\n" +
		"Slide 1:\n" +
		"  - Picture 1\n" +
		"\n" +
		"Slide 2:\n" +
		"  ! slide XML cannot be parsed\n" +
		"\n"

	if got := result.Report(); got != want {
		t.Errorf("Report() = %q, want %q", got, want)
	}
}

func TestExtractionResult_Counts(t *testing.T) {
	result := &model.ExtractionResult{
		Filename: "deck.pptx",
		Slides: []model.SlideResult{
			{Index: 1, Descriptions: []string{"a", "b"}},
			{Index: 2},
			{Index: 3, Descriptions: []string{"c"}},
		},
	}

	if got := result.SlideCount(); got != 3 {
		t.Errorf("SlideCount() = %d, want 3", got)
	}
	if got := result.DescriptionCount(); got != 3 {
		t.Errorf("DescriptionCount() = %d, want 3", got)
	}
}
