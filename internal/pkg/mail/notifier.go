// Package mail sends transactional email to deliverymen.
package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/config"
	"fastfeet/pkg/logger"
)

type notifierLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Notifier delivers cancellation notices over SMTP. Sending is best effort:
// a failed send is logged and never fails the cancellation itself.
type Notifier struct {
	log    notifierLogger
	dialer *gomail.Dialer
	from   string
}

func New(log notifierLogger, cfg *config.Mail) *Notifier {
	return &Notifier{
		log:    log.With(),
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (n *Notifier) SendCancellation(_ context.Context, notice entities.CancellationNotice) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", notice.DeliverymanEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Delivery of %s was canceled", notice.Product))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nThe delivery of %s was canceled at %s.\n",
		notice.DeliverymanName,
		notice.Product,
		notice.CanceledAt.Format(time.RFC1123),
	))

	err := n.dialer.DialAndSend(msg)
	if err != nil {
		n.log.With(
			logger.NewField("error", err),
			logger.NewField("to", notice.DeliverymanEmail),
		).Error("send cancellation email")
		return
	}

	n.log.With(
		logger.NewField("to", notice.DeliverymanEmail),
	).Info("cancellation email sent")
}
