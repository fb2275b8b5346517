package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

// renderReceipt builds the order confirmation e-mail: subject, HTML body and
// plain-text alternative.
func renderReceipt(order *entity.Order) (string, string, string) {
	subject := fmt.Sprintf("Your order #%s", order.ID)

	var text strings.Builder
	fmt.Fprintf(&text, "Order ID: #%s\nPlaced: %s\nPayment: %s\n\nItems:\n",
		order.ID, order.CreatedAt.Format("2006-01-02 15:04 MST"), order.PaymentMethod)
	for _, item := range order.Items {
		fmt.Fprintf(&text, "- %s (%s, %s) x%d @ $%s = $%s\n",
			item.Name, item.Size, item.Color, item.Quantity,
			item.Price.StringFixed(2), item.Subtotal().StringFixed(2))
	}
	writeSummary(&text, order.Summary)

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>Thank you for your order, %s!</h2>", html.EscapeString(order.Shipping.FirstName))
	fmt.Fprintf(&body, "<p>Order ID: <strong>#%s</strong></p><ul>", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&body, "<li>%s (%s, %s) &times; %d: $%s</li>",
			html.EscapeString(item.Name), html.EscapeString(item.Size), html.EscapeString(item.Color),
			item.Quantity, item.Subtotal().StringFixed(2))
	}
	body.WriteString("</ul><pre>")
	var totals strings.Builder
	writeSummary(&totals, order.Summary)
	body.WriteString(html.EscapeString(strings.TrimSpace(totals.String())))
	body.WriteString("</pre>")

	return subject, body.String(), text.String()
}

func writeSummary(b *strings.Builder, s entity.OrderSummary) {
	fmt.Fprintf(b, "\nSubtotal: $%s\n", s.Subtotal.StringFixed(2))
	fmt.Fprintf(b, "Shipping (%s): $%s\n", s.ShippingMethod, s.Shipping.StringFixed(2))
	fmt.Fprintf(b, "Tax: $%s\n", s.Tax.StringFixed(2))
	if s.Discount.IsPositive() {
		fmt.Fprintf(b, "Discount (%s, %d%%): -$%s\n", s.CouponCode, s.DiscountPercent, s.Discount.StringFixed(2))
	}
	fmt.Fprintf(b, "Total: $%s\n", s.Total.StringFixed(2))
}
