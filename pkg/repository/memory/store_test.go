package memory_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/types"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/repository/memory"
)

func TestStore_LatestBeforeAnyUpload(t *testing.T) {
	store := memory.New()

	if _, err := store.Latest(); !errors.Is(err, types.ErrNoResultYet) {
		t.Errorf("Latest() error = %v, want ErrNoResultYet", err)
	}
}

func TestStore_UnknownToken(t *testing.T) {
	store := memory.New()
	store.Put(&model.ExtractionResult{Filename: "a.pptx"})

	if _, err := store.Get("no-such-token"); !errors.Is(err, types.ErrNoResultYet) {
		t.Errorf("Get() error = %v, want ErrNoResultYet", err)
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := memory.New()
	result := &model.ExtractionResult{
		Filename: "deck.pptx",
		Slides:   []model.SlideResult{{Index: 1, Descriptions: []string{"Logo"}}},
	}

	token := store.Put(result)
	if token == "" {
		t.Fatal("Put() returned an empty token")
	}

	got, err := store.Get(token)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != result {
		t.Error("Get() returned a different result than stored")
	}
}

func TestStore_LatestTracksMostRecent(t *testing.T) {
	store := memory.New()
	first := &model.ExtractionResult{Filename: "first.pptx"}
	second := &model.ExtractionResult{Filename: "second.pptx"}

	store.Put(first)
	store.Put(second)

	got, err := store.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.Filename != "second.pptx" {
		t.Errorf("Latest().Filename = %q, want second.pptx", got.Filename)
	}
}

func TestStore_EvictsOldestBeyondBound(t *testing.T) {
	store := memory.New()

	var tokens []string
	for i := 0; i < 12; i++ {
		token := store.Put(&model.ExtractionResult{
			Filename: fmt.Sprintf("deck%d.pptx", i),
		})
		tokens = append(tokens, token)
	}

	// The oldest entries are gone, the newest survives.
	if _, err := store.Get(tokens[0]); !errors.Is(err, types.ErrNoResultYet) {
		t.Errorf("Get(oldest) error = %v, want ErrNoResultYet", err)
	}
	if _, err := store.Get(tokens[len(tokens)-1]); err != nil {
		t.Errorf("Get(newest) error = %v, want nil", err)
	}
}
