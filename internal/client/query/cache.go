package query

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrClosed is returned by a query used after Close.
var ErrClosed = errors.New("query is closed")

// Status is the lifecycle state of a cached key.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "idle"
	}
}

type fetchFunc func(ctx context.Context) (any, error)

// entry is the cached state of one key. Guarded by Cache.mu.
type entry struct {
	updatedAt  time.Time
	data       any
	err        error
	fetch      fetchFunc
	key        Key
	generation uint64
	consumers  int
	status     Status
	hasData    bool
	stale      bool
}

// Cache holds entries for all keys. The zero value is not usable; call New.
type Cache struct {
	logger    *slog.Logger
	entries   map[string]*entry
	now       func() time.Time
	group     singleflight.Group
	bg        sync.WaitGroup
	staleTime time.Duration
	mu        sync.Mutex
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime makes successful data older than d eligible for re-fetch on
// the next read. Zero keeps data fresh until it is invalidated.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) { c.staleTime = d }
}

// New creates an empty cache.
func New(logger *slog.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		logger:  logger,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// mount registers a consumer of key. Caller holds no lock.
func (c *Cache) mount(key Key, fetch fetchFunc) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key, generation: 1}
		c.entries[id] = e
	}
	e.consumers++
	e.fetch = fetch
	return e
}

func (c *Cache) unmount(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.consumers > 0 {
		e.consumers--
	}
}

// fresh reports whether e can be served without a fetch. Caller holds c.mu.
func (c *Cache) fresh(e *entry) bool {
	if e.status != StatusSuccess || e.stale {
		return false
	}
	return c.staleTime <= 0 || c.now().Sub(e.updatedAt) < c.staleTime
}

// load starts or joins the fetch of e at generation gen. The fetch runs
// detached from ctx; a cancelled caller only stops waiting.
func (c *Cache) load(ctx context.Context, e *entry, gen uint64, fetch fetchFunc) (any, error) {
	id := e.key.String()
	ch := c.group.DoChan(id+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		c.logger.Debug("query fetch started", "key", id, "generation", gen)
		v, err := fetch(context.WithoutCancel(ctx))
		c.store(e, gen, v, err)
		return v, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// store applies a finished fetch unless it was superseded or nobody is
// mounted any more.
func (c *Cache) store(e *entry, gen uint64, v any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := e.key.String()
	if e.generation != gen {
		c.logger.Debug("query result discarded: invalidated", "key", id, "generation", gen)
		return
	}
	if e.consumers == 0 {
		c.logger.Debug("query result discarded: no consumers", "key", id)
		if e.status == StatusLoading {
			e.status = StatusIdle
			if e.hasData {
				e.status = StatusSuccess
			}
		}
		return
	}

	if err != nil {
		e.status = StatusError
		e.err = err
		return
	}
	e.status = StatusSuccess
	e.data = v
	e.err = nil
	e.hasData = true
	e.stale = false
	e.updatedAt = c.now()
}

// Invalidate marks every entry whose key has the given prefix as stale.
// In-flight fetches for those entries will not be stored. Entries with at
// least one consumer are re-fetched in the background.
func (c *Cache) Invalidate(prefix Key) {
	type job struct {
		e     *entry
		fetch fetchFunc
		gen   uint64
	}
	var jobs []job

	c.mu.Lock()
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.generation++
		e.stale = true
		if e.consumers > 0 && e.fetch != nil {
			e.status = StatusLoading
			jobs = append(jobs, job{e: e, gen: e.generation, fetch: e.fetch})
		}
	}
	c.mu.Unlock()

	c.logger.Debug("query invalidated", "prefix", prefix.String(), "refetch", len(jobs))

	for _, j := range jobs {
		c.bg.Add(1)
		go func() {
			defer c.bg.Done()
			if _, err := c.load(context.Background(), j.e, j.gen, j.fetch); err != nil {
				c.logger.Debug("background refetch failed", "key", j.e.key.String(), "error", err)
			}
		}()
	}
}

// Wait blocks until background re-fetches started by Invalidate finish.
func (c *Cache) Wait() {
	c.bg.Wait()
}
