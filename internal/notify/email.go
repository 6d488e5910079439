package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"gopkg.in/gomail.v2"
)

const transactionEmailTemplate = `
<h2>Transaction notification</h2>
<p>Account: %s</p>
<p>Operation: %s</p>
<p>Amount: %s</p>
<p>Balance: %s</p>
<p>Reference: %s</p>
<p>Date: %s</p>
`

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier отправляет письмо владельцу счета. Адрес берется из сервиса клиентов.
type EmailNotifier struct {
	sender    MailSender
	customers CustomerFinder
	from      string
}

func NewEmailNotifier(conf SMTPConfig, customers CustomerFinder) *EmailNotifier {
	return NewEmailNotifierWith(
		gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		conf.From,
		customers,
	)
}

func NewEmailNotifierWith(sender MailSender, from string, customers CustomerFinder) *EmailNotifier {
	return &EmailNotifier{sender: sender, customers: customers, from: from}
}

func (n *EmailNotifier) Notify(ctx context.Context, event domain.TransactionEvent) error {
	customer, err := n.customers.FindCustomer(ctx, event.CustomerID)
	if err != nil {
		return fmt.Errorf("email notification: %w", err)
	}
	if customer.Email == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", customer.Email)
	m.SetHeader("Subject", fmt.Sprintf("Transaction %s on account %s", event.TransactionID, event.AccountNo))
	m.SetBody("text/html", fmt.Sprintf(transactionEmailTemplate,
		html.EscapeString(event.AccountNo),
		html.EscapeString(string(event.TransactionType)),
		event.Amount.StringFixed(domain.MoneyScale),
		event.NewBalance.StringFixed(domain.MoneyScale),
		html.EscapeString(event.TransactionID),
		event.TransactionDate.Format("02.01.2006 15:04:05"),
	))

	if err = n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("email notification: %w", err)
	}
	return nil
}
