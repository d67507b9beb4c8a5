package dto

// CreatePaymentSessionRequest inicia el pago de un pedido existente.
type CreatePaymentSessionRequest struct {
	OrderID string `json:"orderId"`
}

// PaymentSessionResponse datos de redirección al proveedor de pagos.
type PaymentSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
