// Package listing implements the shared filterable-collection behaviour the
// public site repeats on every gallery page: free-text search, category
// filtering over tags, and a bounded "show more" window. The engine is
// parametrized over the item type so every resource shares one
// implementation instead of a per-page copy.
package listing

// SearchPredicate reports whether an item matches a free-text query.
type SearchPredicate[T any] func(item T, query string) bool

// CategoryPredicate reports whether an item belongs to a category selection.
type CategoryPredicate[T any] func(item T, category string) bool

// Collection holds one fetched result set together with its filter state.
type Collection[T any] struct {
	items       []T
	search      SearchPredicate[T]
	category    CategoryPredicate[T]
	query       string
	selection   string
	initialSize int
	step        int
	displayed   int
}

// Option configures a collection at construction time.
type Option[T any] func(*Collection[T])

// WithInitialSize sets how many items the first window shows.
func WithInitialSize[T any](n int) Option[T] {
	return func(c *Collection[T]) {
		if n > 0 {
			c.initialSize = n
		}
	}
}

// WithStep sets how many items each ShowMore call adds.
func WithStep[T any](n int) Option[T] {
	return func(c *Collection[T]) {
		if n > 0 {
			c.step = n
		}
	}
}

// New builds a collection over the fetched items. The default window shows
// six items and grows by three, matching the public gallery pages.
func New[T any](items []T, search SearchPredicate[T], category CategoryPredicate[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		items:       items,
		search:      search,
		category:    category,
		initialSize: 6,
		step:        3,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.displayed = c.initialSize
	return c
}

// SetQuery updates the free-text query. Changing the query resets the
// display window to its initial size.
func (c *Collection[T]) SetQuery(query string) {
	if c.query == query {
		return
	}
	c.query = query
	c.displayed = c.initialSize
}

// SetCategory updates the category selection. The window resets so a new
// filter never starts deep into a shorter result set.
func (c *Collection[T]) SetCategory(category string) {
	if c.selection == category {
		return
	}
	c.selection = category
	c.displayed = c.initialSize
}

// Reset clears query and category and restores the initial window.
func (c *Collection[T]) Reset() {
	c.query = ""
	c.selection = ""
	c.displayed = c.initialSize
}

// Filtered returns every item passing the current query and category, in
// source order. The result is always a subset of the fetched items.
func (c *Collection[T]) Filtered() []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.query != "" && c.search != nil && !c.search(item, c.query) {
			continue
		}
		if c.selection != "" && c.category != nil && !c.category(item, c.selection) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Visible returns the current display window over the filtered set. The
// window never exceeds the filtered length.
func (c *Collection[T]) Visible() []T {
	filtered := c.Filtered()
	limit := c.displayed
	if limit > len(filtered) {
		limit = len(filtered)
	}
	return filtered[:limit]
}

// ShowMore grows the window by the configured step, capped at the filtered
// set's length, and reports whether more items remain hidden.
func (c *Collection[T]) ShowMore() bool {
	filtered := len(c.Filtered())
	c.displayed += c.step
	if c.displayed > filtered {
		c.displayed = filtered
	}
	if c.displayed < c.initialSize {
		c.displayed = c.initialSize
	}
	return c.displayed < filtered
}

// HasMore reports whether hidden items remain beyond the current window.
func (c *Collection[T]) HasMore() bool {
	return c.displayed < len(c.Filtered())
}
