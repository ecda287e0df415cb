package port

import (
	"github.com/nikolayk812/shop-demo/internal/domain"
)

type IdentityResolver interface {
	Resolve(name string) *domain.Identity
}

type PaymentDispatcher interface {
	Settle(tag string, amount domain.Money) error
}
