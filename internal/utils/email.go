package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"boutique_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail envoie le récapitulatif de commande.
// Best-effort : si SMTP_HOST n'est pas configuré, on ne fait rien.
// L'échec d'envoi ne doit jamais faire échouer la commande.
func SendOrderConfirmationEmail(to string, order models.Order, lines []models.CartLine) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(fromAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Order #%d confirmation", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order, lines))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

func fromAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return "noreply@boutique.local"
}

// orderConfirmationHTML génère le HTML du récapitulatif de commande.
func orderConfirmationHTML(order models.Order, lines []models.CartLine) string {
	var rows strings.Builder
	for _, line := range lines {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f</td>
				<td>%.2f</td>
			</tr>`, line.Name, line.Quantity, line.Price, line.Price*float64(line.Quantity)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Order confirmation</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Your order is confirmed</h2>
		<p>Order #%d — %s</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left;">Product</th>
					<th style="padding: 10px; text-align: left;">Quantity</th>
					<th style="padding: 10px; text-align: left;">Unit price</th>
					<th style="padding: 10px; text-align: left;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">%.2f</td>
				</tr>
			</tfoot>
		</table>
	</div>
</body>
</html>`, order.ID, order.OrderDate.Format("2006-01-02 15:04"), rows.String(), order.TotalAmount)
}
