package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nikolayk812/shop-demo/internal/cart"
	"github.com/nikolayk812/shop-demo/internal/config"
	"github.com/nikolayk812/shop-demo/internal/domain"
	"github.com/nikolayk812/shop-demo/internal/identity"
	"github.com/nikolayk812/shop-demo/internal/logger"
	"github.com/nikolayk812/shop-demo/internal/payment"
	"github.com/nikolayk812/shop-demo/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type purchase struct {
	customer string
	items    []product
	tag      string
}

type product struct {
	name  string
	price string
}

var purchases = []purchase{
	{
		customer: "Fernanda",
		items:    []product{{"Notebook", "3500.00"}, {"Mouse", "150.00"}},
		tag:      "cartao",
	},
	{
		customer: "Carlos",
		items:    []product{{"Gaming Chair", "1200.00"}},
		tag:      "pix",
	},
	{
		customer: "José",
		items:    []product{{"Mechanical Keyboard", "500.00"}},
		tag:      "boleto",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(os.Stdout, cfg, log, purchases); err != nil {
		log.Error("shop run failed", zap.Error(err))
		log.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config.Config, log *zap.Logger, purchases []purchase) error {
	identities := identity.New(identity.WithOutput(w), identity.WithLogger(log))
	dispatcher := payment.NewDispatcher(payment.WithOutput(w), payment.WithLogger(log))

	if err := checkoutAll(w, cfg, log, identities, dispatcher, purchases); err != nil {
		return err
	}

	log.Info("all checkouts completed",
		zap.Int("identities", identities.Len()),
		zap.Int("checkouts", len(purchases)),
	)

	return nil
}

func checkoutAll(
	w io.Writer,
	cfg config.Config,
	log *zap.Logger,
	identities port.IdentityResolver,
	dispatcher port.PaymentDispatcher,
	purchases []purchase,
) error {
	// resolve every customer up front so creation notices precede the checkouts
	for _, p := range purchases {
		identities.Resolve(p.customer)
	}

	for _, p := range purchases {
		c, err := cart.New(identities.Resolve(p.customer), dispatcher, cfg.Currency,
			cart.WithOutput(w), cart.WithLogger(log))
		if err != nil {
			return fmt.Errorf("cart.New: %w", err)
		}

		for _, it := range p.items {
			item, err := newItem(it, cfg)
			if err != nil {
				return fmt.Errorf("newItem[%s]: %w", it.name, err)
			}
			c.AddItem(item)
		}

		if err := c.Checkout(p.tag); err != nil {
			return fmt.Errorf("checkout for %s: %w", p.customer, err)
		}
	}

	return nil
}

func newItem(p product, cfg config.Config) (domain.CatalogItem, error) {
	amount, err := decimal.NewFromString(p.price)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	price, err := domain.NewMoney(amount, cfg.Currency)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("domain.NewMoney: %w", err)
	}

	return domain.NewCatalogItem(p.name, price)
}
