package query

import "context"

// Mutate runs fn and, only if it succeeds, invalidates the given keys.
// A failed mutation leaves the cache untouched.
func Mutate[T any](ctx context.Context, c *Cache, fn func(ctx context.Context) (T, error), invalidate ...Key) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	for _, k := range invalidate {
		c.Invalidate(k)
	}
	return v, nil
}

// Exec is Mutate for operations without a result, such as delete.
func Exec(ctx context.Context, c *Cache, fn func(ctx context.Context) error, invalidate ...Key) error {
	_, err := Mutate(ctx, c, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, invalidate...)
	return err
}
