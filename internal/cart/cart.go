// Package cart accumulates catalog items for one customer and drives checkout.
package cart

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/nikolayk812/shop-demo/internal/domain"
	"github.com/nikolayk812/shop-demo/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Cart is not safe for concurrent use.
type Cart struct {
	ID       uuid.UUID
	owner    *domain.Identity
	items    []domain.CatalogItem
	currency currency.Unit

	dispatcher port.PaymentDispatcher
	out        io.Writer
	log        *zap.Logger
}

type Option func(*Cart)

// WithOutput sets where the checkout announcement is printed.
func WithOutput(w io.Writer) Option {
	return func(c *Cart) {
		c.out = w
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Cart) {
		c.log = log
	}
}

func New(owner *domain.Identity, dispatcher port.PaymentDispatcher, cur currency.Unit, opts ...Option) (*Cart, error) {
	if owner == nil {
		return nil, fmt.Errorf("owner is nil")
	}

	if dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is nil")
	}

	c := &Cart{
		ID:         uuid.New(),
		owner:      owner,
		currency:   cur,
		dispatcher: dispatcher,
		out:        io.Discard,
		log:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Cart) Owner() *domain.Identity {
	return c.owner
}

func (c *Cart) AddItem(item domain.CatalogItem) {
	c.items = append(c.items, item)
}

func (c *Cart) Items() []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(c.items))
	copy(items, c.items)

	return items
}

// Total sums the item prices. It is recomputed on every call.
func (c *Cart) Total() (domain.Money, error) {
	total := domain.ZeroMoney(c.currency)

	for i, item := range c.items {
		var err error

		total, err = total.Add(item.Price)
		if err != nil {
			return domain.Money{}, fmt.Errorf("item[%d] %s: %w", i, item.Name, err)
		}
	}

	return total, nil
}

// Checkout settles the current total with the payment method named by tag.
// The cart stays open afterwards; errors from the dispatcher are returned as is.
// Nothing is settled when the checkout notice cannot be written.
func (c *Cart) Checkout(tag string) error {
	total, err := c.Total()
	if err != nil {
		return fmt.Errorf("c.Total: %w", err)
	}

	if _, err := fmt.Fprintf(c.out, "\nUser %s is finalizing the purchase...\n", c.owner.Name()); err != nil {
		return fmt.Errorf("write checkout notice: %w", err)
	}

	c.log.Info("checkout started",
		zap.Stringer("cart_id", c.ID),
		zap.String("owner", c.owner.Name()),
		zap.Int("items", len(c.items)),
		zap.Stringer("total", total),
		zap.String("tag", tag),
	)

	if total.IsZero() {
		c.log.Warn("checkout with zero total", zap.Stringer("cart_id", c.ID))
	}

	return c.dispatcher.Settle(tag, total)
}
