package payment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/shop-demo/internal/domain"
)

var ErrInvalidPaymentType = errors.New("invalid payment type")

// Method is one of the fixed settlement strategies. The zero value is not a valid method.
type Method int

const (
	Card Method = iota + 1
	Boleto
	Pix
	Cash
)

var methodsByTag = map[string]Method{
	"cartao":  Card,
	"boleto":  Boleto,
	"pix":     Pix,
	"especie": Cash,
}

// ParseMethod matches tag case-insensitively against the known payment tags.
func ParseMethod(tag string) (Method, error) {
	m, ok := methodsByTag[strings.ToLower(tag)]
	if !ok {
		return 0, fmt.Errorf("tag[%s]: %w", tag, ErrInvalidPaymentType)
	}

	return m, nil
}

func (m Method) String() string {
	switch m {
	case Card:
		return "Card"
	case Boleto:
		return "Boleto"
	case Pix:
		return "Pix"
	case Cash:
		return "Cash"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Settle writes the single line describing the payment of amount.
func (m Method) Settle(w io.Writer, amount domain.Money) error {
	var err error

	switch m {
	case Card, Pix, Cash:
		_, err = fmt.Fprintf(w, "Payment of %s completed via %s.\n", amount, m)
	case Boleto:
		_, err = fmt.Fprintf(w, "Invoice for %s generated for payment.\n", amount)
	default:
		return fmt.Errorf("method[%d]: %w", int(m), ErrInvalidPaymentType)
	}

	if err != nil {
		return fmt.Errorf("write settlement: %w", err)
	}

	return nil
}
