// Package payment implementa el puerto CheckoutProvider sobre Stripe Checkout.
package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/jhoicas/delivery-api/internal/application/payments"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

var _ payments.CheckoutProvider = (*StripeProvider)(nil)

// Config del proveedor de pagos.
type Config struct {
	SecretKey string
	Currency  string        // código ISO en minúsculas, ej. "brl"
	BaseURL   string        // URL pública del front-end para success/cancel
	Timeout   time.Duration // timeout del round trip HTTP a Stripe
}

// StripeProvider crea sesiones de Stripe Checkout para pedidos.
// El HTTP client lleva timeout propio: Stripe es la única llamada externa
// lenta del sistema y no puede colgar el request indefinidamente.
type StripeProvider struct {
	api *client.API
	cfg Config
}

// NewStripeProvider construye el proveedor con su propio cliente HTTP acotado.
func NewStripeProvider(cfg Config) *StripeProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "brl"
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, stripe.NewBackends(&http.Client{Timeout: cfg.Timeout}))
	return &StripeProvider{api: api, cfg: cfg}
}

// CreateSession crea la sesión de checkout con una línea por producto del
// pedido, usando el precio capturado en la línea (no el vigente del catálogo).
func (p *StripeProvider) CreateSession(ctx context.Context, order *entity.Order, lines []*repository.LineWithProduct) (string, string, error) {
	if p.cfg.SecretKey == "" {
		return "", "", fmt.Errorf("stripe: secret key no configurada")
	}
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, l := range lines {
		// Stripe trabaja en centavos.
		unitAmount := l.Line.UnitPrice.Shift(2).Round(0).IntPart()
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(p.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(l.ProductName),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(int64(l.Line.Quantity)),
		})
	}
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		SuccessURL:         stripe.String(fmt.Sprintf("%s/pedidos/%s/exito", p.cfg.BaseURL, order.ID)),
		CancelURL:          stripe.String(fmt.Sprintf("%s/pedidos/%s", p.cfg.BaseURL, order.ID)),
	}
	params.Context = ctx
	params.AddMetadata("order_id", order.ID)
	params.AddMetadata("user_id", order.UserID)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe: crear sesión de checkout: %w", err)
	}
	return sess.ID, sess.URL, nil
}
