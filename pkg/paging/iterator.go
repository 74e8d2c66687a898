package paging

import "context"

// PageFunc fetches the page that starts at marker. A nil marker requests the
// first page, a nil next marker means the returned page is the last one.
type PageFunc[T any, M any] func(ctx context.Context, marker *M) (items []T, next *M, err error)

// Predicate decides if an item is part of the sequence. Predicates may call
// out to the provider, a returned error ends the iteration.
type Predicate[T any] func(ctx context.Context, item T) (bool, error)

// Iterator presents a multi page listing as a single lazy sequence of the items
// matching a predicate. Pages are only fetched once the current page has been
// consumed.
//
// An Iterator is not restartable and must not be advanced from more than one
// goroutine, create a new Iterator to traverse the listing again.
type Iterator[T any, M any] struct {
	fetch PageFunc[T, M]
	match Predicate[T]

	page   []T
	pos    int
	marker *M
	last   bool

	item T
	err  error
}

// New creates an Iterator over the pages returned by fetch, when match is nil
// every item is returned
func New[T any, M any](fetch PageFunc[T, M], match Predicate[T]) *Iterator[T, M] {
	if match == nil {
		match = Any[T]
	}

	return &Iterator[T, M]{fetch: fetch, match: match}
}

// Any is a Predicate that matches every item
func Any[T any](context.Context, T) (bool, error) {
	return true, nil
}

// Next advances the iterator to the next matching item, returning false once the
// listing is exhausted or an error occurred. Check Err after Next returns false.
func (i *Iterator[T, M]) Next(ctx context.Context) bool {
	if i.err != nil {
		return false
	}

	for {
		for i.pos < len(i.page) {
			it := i.page[i.pos]
			i.pos++

			ok, err := i.match(ctx, it)
			if err != nil {
				i.err = err
				return false
			}

			if ok {
				i.item = it
				return true
			}
		}

		if i.last {
			return false
		}

		if err := ctx.Err(); err != nil {
			i.err = err
			return false
		}

		page, next, err := i.fetch(ctx, i.marker)
		if err != nil {
			i.err = err
			return false
		}

		i.page = page
		i.pos = 0
		i.marker = next
		i.last = next == nil
	}
}

// Item returns the item the last call to Next advanced to
func (i *Iterator[T, M]) Item() T {
	return i.item
}

// Err returns the error that stopped the iteration
func (i *Iterator[T, M]) Err() error {
	return i.err
}

// Collect drains the iterator
func (i *Iterator[T, M]) Collect(ctx context.Context) ([]T, error) {
	items := []T{}
	for i.Next(ctx) {
		items = append(items, i.Item())
	}

	return items, i.Err()
}

// First returns the first matching item, the remaining pages are not fetched
func (i *Iterator[T, M]) First(ctx context.Context) (T, bool, error) {
	if i.Next(ctx) {
		return i.Item(), true, nil
	}

	var zero T
	return zero, false, i.Err()
}
