// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	orderdom "zapateria/internal/domain/order"
)

// OrderMailer notifies the shop operator about a freshly created order.
// One outbound email per checkout, fire-and-forget: the caller logs and
// swallows any error here, the order itself is never rolled back.
type OrderMailer struct {
	client      EmailClient
	fromAddress string
	toAddress   string
}

func NewOrderMailer(client EmailClient, fromAddress, toAddress string) *OrderMailer {
	return &OrderMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		toAddress:   strings.TrimSpace(toAddress),
	}
}

// NotifyNewOrder sends the operator a plain-text order summary.
func (m *OrderMailer) NotifyNewOrder(ctx context.Context, o orderdom.Order) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("order_mailer: email client is nil")
	}
	if m.toAddress == "" {
		return fmt.Errorf("order_mailer: operator address is empty")
	}

	subject := fmt.Sprintf("Nuevo pedido %s — Q%.2f", o.ID, o.Total)

	var b strings.Builder
	fmt.Fprintf(&b, "Se recibió un nuevo pedido.\n\n")
	fmt.Fprintf(&b, "Pedido    : %s\n", o.ID)
	fmt.Fprintf(&b, "Cliente   : %s\n", o.Nombre)
	fmt.Fprintf(&b, "Teléfono  : %s\n", o.Telefono)
	fmt.Fprintf(&b, "Correo    : %s\n", o.Correo)
	fmt.Fprintf(&b, "Dirección : %s\n", o.Direccion)
	fmt.Fprintf(&b, "Pago      : %s\n", o.MetodoPago)
	if o.Nota != "" {
		fmt.Fprintf(&b, "Nota      : %s\n", o.Nota)
	}
	fmt.Fprintf(&b, "\nArtículos:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  - %s (talla %s) x%d — Q%.2f\n", it.Nombre, it.Talla, it.Cantidad, it.Precio)
	}
	fmt.Fprintf(&b, "\nTotal: Q%.2f\n", o.Total)

	return m.client.Send(ctx, m.fromAddress, m.toAddress, subject, b.String())
}
