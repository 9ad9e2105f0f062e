package listing_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amalfoundation/foundation-cms/listing"
)

type card struct {
	Title string
	Tag   string
}

func cards(n int) []card {
	out := make([]card, 0, n)
	for i := 0; i < n; i++ {
		tag := "water"
		if i%2 == 1 {
			tag = "education"
		}
		out = append(out, card{Title: fmt.Sprintf("Item %02d", i), Tag: tag})
	}
	return out
}

func newCollection(items []card, opts ...listing.Option[card]) *listing.Collection[card] {
	search := func(c card, q string) bool {
		return strings.Contains(strings.ToLower(c.Title), strings.ToLower(q))
	}
	category := func(c card, sel string) bool { return c.Tag == sel }
	return listing.New(items, search, category, opts...)
}

func TestVisibleWindowDefaults(t *testing.T) {
	col := newCollection(cards(10))

	if got := len(col.Visible()); got != 6 {
		t.Fatalf("initial window = %d, want 6", got)
	}
	if !col.HasMore() {
		t.Fatal("ten items behind a six-item window must report more")
	}
	if got := len(col.Filtered()); got != 10 {
		t.Fatalf("filtered = %d, want 10", got)
	}
}

func TestShowMoreGrowsUntilExhausted(t *testing.T) {
	col := newCollection(cards(10))

	if more := col.ShowMore(); !more {
		t.Fatal("9 of 10 shown, expected more remaining")
	}
	if got := len(col.Visible()); got != 9 {
		t.Fatalf("window = %d, want 9", got)
	}
	if more := col.ShowMore(); more {
		t.Fatal("all items shown, expected no more")
	}
	if got := len(col.Visible()); got != 10 {
		t.Fatalf("window = %d, want 10", got)
	}
	if col.HasMore() {
		t.Fatal("HasMore after full reveal")
	}
}

func TestWindowNeverExceedsFilteredSet(t *testing.T) {
	col := newCollection(cards(4))

	if got := len(col.Visible()); got != 4 {
		t.Fatalf("window = %d, want 4", got)
	}
	if col.ShowMore() {
		t.Fatal("nothing left to reveal")
	}
	if got := len(col.Visible()); got != 4 {
		t.Fatalf("window after ShowMore = %d, want 4", got)
	}
}

func TestSetQueryFiltersAndResetsWindow(t *testing.T) {
	col := newCollection(cards(12))
	col.ShowMore()

	col.SetQuery("item 0")
	visible := col.Visible()
	if len(visible) != 6 {
		t.Fatalf("query window = %d, want 6", len(visible))
	}
	for _, c := range visible {
		if !strings.HasPrefix(c.Title, "Item 0") {
			t.Fatalf("unexpected match %q", c.Title)
		}
	}

	col.SetQuery("")
	if got := len(col.Visible()); got != 6 {
		t.Fatalf("cleared query window = %d, want initial 6", got)
	}
}

func TestSetCategoryFiltersByTag(t *testing.T) {
	col := newCollection(cards(10), listing.WithInitialSize[card](3), listing.WithStep[card](2))
	col.ShowMore()

	col.SetCategory("education")
	visible := col.Visible()
	if len(visible) != 3 {
		t.Fatalf("category window = %d, want 3", len(visible))
	}
	for _, c := range visible {
		if c.Tag != "education" {
			t.Fatalf("wrong tag %q", c.Tag)
		}
	}
	if got := len(col.Filtered()); got != 5 {
		t.Fatalf("filtered = %d, want 5", got)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	col := newCollection(cards(10))
	col.SetQuery("item 01")
	col.SetCategory("water")
	col.ShowMore()

	col.Reset()
	if got := len(col.Filtered()); got != 10 {
		t.Fatalf("filtered after reset = %d, want 10", got)
	}
	if got := len(col.Visible()); got != 6 {
		t.Fatalf("window after reset = %d, want 6", got)
	}
}
