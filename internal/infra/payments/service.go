package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/Spok95/shopdesk/internal/domain/sales"
)

// Kind: что оплачивается, бронь или продажа.
type Kind string

const (
	KindBooking Kind = "booking"
	KindSale    Kind = "sale"
)

var ErrUnknownKind = errors.New("payments: unknown kind")

type Service struct {
	baseURL  string
	bookings *bookings.Repo
	sales    *sales.Repo
}

func NewService(baseURL string, b *bookings.Repo, s *sales.Repo) *Service {
	return &Service{baseURL: strings.TrimRight(baseURL, "/"), bookings: b, sales: s}
}

// PaymentURL строит ссылку на оплату. Платёжного шлюза нет,
// ссылка ведёт на наш же HTTP-сервер.
func (s *Service) PaymentURL(kind Kind, id string) string {
	return fmt.Sprintf("%s/payments/pay?%s=%s", s.baseURL, kind, url.QueryEscape(id))
}

// Pay помечает запись оплаченной. Повторная оплата не ошибка.
func (s *Service) Pay(ctx context.Context, kind Kind, id string) error {
	switch kind {
	case KindBooking:
		b, err := s.bookings.Get(id)
		if err != nil {
			return err
		}
		if b.Paid {
			return nil
		}
		b.Paid = true
		_, err = s.bookings.Update(ctx, id, b)
		return err
	case KindSale:
		x, err := s.sales.Get(id)
		if err != nil {
			return err
		}
		if x.Paid {
			return nil
		}
		x.Paid = true
		_, err = s.sales.Update(ctx, id, x)
		return err
	}
	return fmt.Errorf("%w %q: %w", ErrUnknownKind, kind, collection.ErrValidation)
}
