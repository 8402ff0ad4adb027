package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"
	"go.uber.org/atomic"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/queue"
	"github.com/Philanthropists/fifoqueue/internal/queue/impl/linked"
	"github.com/Philanthropists/fifoqueue/internal/queue/impl/mutex"
)

var registryErr = errs.Class("registry")

type inMemoryCache interface {
	Add(k string, v any, d time.Duration) error
	Get(k string) (any, bool)
	Delete(k string)
	Items() map[string]cache.Item
	OnEvicted(f func(string, any))
	DeleteExpired()
}

// Registry keeps named queues. Queues older than TTL are evicted and
// destroyed on the next registry call; a zero TTL keeps them until removed.
// No background goroutine is involved.
type Registry struct {
	TTL time.Duration
	Log *logging.Logger

	// Observer, when set, is attached to every queue created afterwards.
	Observer queue.Observer[int]

	once    sync.Once
	cache   inMemoryCache
	expired atomic.Int64
}

func (r *Registry) init() {
	r.once.Do(func() {
		expTime := cache.NoExpiration
		if r.TTL > 0 {
			expTime = r.TTL
		}

		if r.Log == nil {
			r.Log = logging.New()
		}

		// negative cleanup interval: no janitor, sweep() runs on demand
		c := cache.New(expTime, -1)
		c.OnEvicted(r.evicted)
		r.cache = c
	})
}

func (r *Registry) evicted(name string, v any) {
	q, ok := v.(queue.FIFOQueue[int])
	if !ok {
		return
	}

	c, err := q.Destroy()
	if err != nil {
		// already destroyed by Remove or Close
		return
	}

	r.expired.Add(int64(c))
	r.Log.Info("evicted expired queue",
		logging.String("name", name),
		logging.Int("released", c),
	)
}

// sweep destroys expired queues through the eviction callback.
func (r *Registry) sweep() {
	r.init()
	r.cache.DeleteExpired()
}

// Create registers a new queue holding first. An empty name gets a random
// one; the name actually used is returned.
func (r *Registry) Create(name string, first int) (string, error) {
	r.sweep()

	if name == "" {
		name = uuid.New().String()
	}

	if _, found := r.cache.Get(name); found {
		return "", registryErr.New("queue %q already exists", name)
	}

	q, err := mutex.CreateQueueFrom(first, linked.WithObserver(r.Observer))
	if err != nil {
		return "", registryErr.Wrap(err)
	}

	if err := r.cache.Add(name, queue.FIFOQueue[int](q), cache.DefaultExpiration); err != nil {
		_, _ = q.Destroy()
		return "", registryErr.New("queue %q already exists", name)
	}

	r.Log.Debug("created queue", logging.String("name", name), logging.Int("first", first))

	return name, nil
}

func (r *Registry) Get(name string) (queue.FIFOQueue[int], error) {
	r.sweep()

	v, found := r.cache.Get(name)
	if !found {
		return nil, registryErr.New("queue %q not found", name)
	}

	return v.(queue.FIFOQueue[int]), nil
}

// Remove destroys the named queue and returns how many nodes it released.
func (r *Registry) Remove(name string) (int, error) {
	q, err := r.Get(name)
	if err != nil {
		return 0, err
	}

	c, err := q.Destroy()
	r.cache.Delete(name)
	if err != nil {
		return 0, registryErr.Wrap(err)
	}

	return c, nil
}

func (r *Registry) Names() []string {
	r.sweep()

	items := r.cache.Items()
	names := make([]string, 0, len(items))
	for k := range items {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Close removes every queue and returns the total number of released nodes,
// including those of queues that expired since the previous Close.
func (r *Registry) Close() (int, error) {
	var group errs.Group

	names := r.Names()
	total := int(r.expired.Swap(0))

	for _, name := range names {
		c, err := r.Remove(name)
		group.Add(err)
		total += c
	}

	return total, group.Err()
}
