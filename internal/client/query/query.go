package query

import (
	"context"
	"fmt"
)

// State is a snapshot of a query as a view renders it.
type State[T any] struct {
	Data    T
	Err     error
	Status  Status
	HasData bool
}

// Query is a mounted view of one cache key. Methods are safe for concurrent
// use; Close must be called once the view no longer needs the data.
type Query[T any] struct {
	cache  *Cache
	entry  *entry
	errGen uint64 // generation whose error this query already observed
	closed bool
}

// Observe mounts key on the cache. fetch is used whenever the key has to be
// loaded; while a fetch is in flight it is shared by all readers of the key.
func Observe[T any](c *Cache, key Key, fetch func(ctx context.Context) (T, error)) *Query[T] {
	e := c.mount(key, func(ctx context.Context) (any, error) {
		v, err := fetch(ctx)
		return v, err
	})
	return &Query[T]{cache: c, entry: e}
}

// Key returns the observed key.
func (q *Query[T]) Key() Key {
	return q.entry.key
}

// Result returns fresh cached data or waits for the key's fetch.
// An error is terminal for this query: later calls return the same error
// until invalidation or a new Observe.
func (q *Query[T]) Result(ctx context.Context) (T, error) {
	var zero T
	c := q.cache
	e := q.entry

	for {
		c.mu.Lock()
		if q.closed {
			c.mu.Unlock()
			return zero, ErrClosed
		}
		if c.fresh(e) {
			v := e.data
			c.mu.Unlock()
			return cast[T](v)
		}
		if e.status == StatusError && q.errGen == e.generation {
			err := e.err
			c.mu.Unlock()
			return zero, err
		}
		gen := e.generation
		fetch := e.fetch
		e.status = StatusLoading
		c.mu.Unlock()

		v, err := c.load(ctx, e, gen, fetch)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}

		c.mu.Lock()
		superseded := e.generation != gen
		if err != nil && !superseded {
			q.errGen = gen
		}
		c.mu.Unlock()

		if superseded {
			// ключ инвалидирован во время загрузки, читаем новое поколение
			continue
		}
		if err != nil {
			return zero, err
		}
		return cast[T](v)
	}
}

// State returns the current state of the key without fetching.
func (q *Query[T]) State() State[T] {
	q.cache.mu.Lock()
	defer q.cache.mu.Unlock()

	e := q.entry
	st := State[T]{Status: e.status, Err: e.err, HasData: e.hasData}
	if e.hasData {
		if v, ok := e.data.(T); ok {
			st.Data = v
		}
	}
	if st.Status != StatusError {
		st.Err = nil
	}
	return st
}

// Close unmounts the query. A fetch still in flight finishes but its result
// is discarded if no other query holds the key.
func (q *Query[T]) Close() {
	q.cache.mu.Lock()
	if q.closed {
		q.cache.mu.Unlock()
		return
	}
	q.closed = true
	q.cache.mu.Unlock()

	q.cache.unmount(q.entry)
}

func cast[T any](v any) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cached value has type %T", v)
	}
	return t, nil
}
