// Package identity hands out one shared domain.Identity per customer name.
package identity

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shop-demo/internal/domain"
	"github.com/nikolayk812/shop-demo/internal/port"
	"go.uber.org/zap"
)

type Cache struct {
	mu         sync.Mutex
	identities map[string]*domain.Identity

	out io.Writer
	log *zap.Logger
}

type Option func(*Cache)

// WithOutput sets where "New identity created" notifications are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Cache) {
		c.out = w
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		identities: make(map[string]*domain.Identity),
		out:        io.Discard,
		log:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var _ port.IdentityResolver = (*Cache)(nil)

// Resolve returns the identity registered under name, creating it on first use.
// Every call with the same name returns the same pointer.
func (c *Cache) Resolve(name string) *domain.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.identities[name]; ok {
		return existing
	}

	created := domain.NewIdentity(uuid.New(), name)
	c.identities[name] = created

	// the notification is written under the lock so it fires once per name
	if _, err := fmt.Fprintf(c.out, "New identity created: %s\n", name); err != nil {
		c.log.Warn("identity notification not written", zap.String("name", name), zap.Error(err))
	}
	c.log.Debug("identity created",
		zap.String("name", name),
		zap.Stringer("id", created.ID()),
	)

	return created
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.identities)
}
