package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/format"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Falha ao enviar e-mail HTML para %s: %v", to, err)
		return fmt.Errorf("falha ao enviar e-mail HTML: %w", err)
	}

	return nil
}

func BuildOrderConfirmationBody(order *models.Order) string {
	rows := ""
	for _, item := range order.OrderItems {
		rows += fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">%s</td></tr>`,
			item.ProductName, item.Qty, format.FormatBRL(item.Price),
		)
	}

	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Pedido confirmado</title>
        </head>
        <body style="font-family: Arial, sans-serif; color: #333;">
            <div style="max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
                <h2>Pedido %s confirmado! 🎉</h2>
                <p>Recebemos o seu pedido e ele já está em processamento.</p>
                <table width="100%%" cellpadding="6" style="border-collapse: collapse;">
                    <tr style="background:#f8f8f8;"><th align="left">Produto</th><th>Qtd</th><th align="right">Preço</th></tr>
                    %s
                </table>
                <p style="text-align:right;">Desconto: <strong>%s</strong></p>
                <p style="text-align:right; font-size:1.2em;">Total: <strong>%s</strong></p>
                <p>Obrigado por comprar com a gente!</p>
                <p>Equipe SITEBAUTY</p>
            </div>
        </body>
        </html>
    `, order.OrderNumber, rows, format.FormatBRL(order.DiscountAmount), format.FormatBRL(order.Total))
}
