package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"gopkg.in/gomail.v2"
)

// CustomerFinder возвращает данные клиента, в том числе адрес для уведомлений.
type CustomerFinder interface {
	FindCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

type MailSender interface {
	DialAndSend(msgs ...*gomail.Message) error
}
