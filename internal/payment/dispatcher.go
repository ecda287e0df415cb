// Package payment resolves payment tags to settlement strategies and runs them.
package payment

import (
	"fmt"
	"io"

	"github.com/nikolayk812/shop-demo/internal/domain"
	"github.com/nikolayk812/shop-demo/internal/port"
	"go.uber.org/zap"
)

// Dispatcher is the single entry point for settling a payment by tag.
type Dispatcher struct {
	out io.Writer
	log *zap.Logger
}

type Option func(*Dispatcher)

func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		out: io.Discard,
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

var _ port.PaymentDispatcher = (*Dispatcher)(nil)

// Settle settles amount with the method named by tag.
// Unknown tags fail with ErrInvalidPaymentType and nothing is written.
func (d *Dispatcher) Settle(tag string, amount domain.Money) error {
	method, err := ParseMethod(tag)
	if err != nil {
		d.log.Warn("payment rejected", zap.String("tag", tag), zap.Error(err))
		return fmt.Errorf("ParseMethod: %w", err)
	}

	if err := method.Settle(d.out, amount); err != nil {
		return fmt.Errorf("method.Settle: %w", err)
	}

	d.log.Info("payment settled",
		zap.Stringer("method", method),
		zap.Stringer("amount", amount),
	)

	return nil
}
