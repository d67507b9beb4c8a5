package payments_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/delivery-api/internal/application/payments"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

type stubOrderRepo struct {
	repository.OrderRepository

	order         *entity.Order
	paymentID     string
	paymentStatus string
}

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, nil
}

func (s *stubOrderRepo) GetLinesByOrderID(_ context.Context, _ string) ([]*repository.LineWithProduct, error) {
	return nil, nil
}

func (s *stubOrderRepo) UpdatePayment(_ context.Context, _, paymentID, paymentStatus string) error {
	s.paymentID = paymentID
	s.paymentStatus = paymentStatus
	return nil
}

type stubProvider struct {
	sessionID string
	url       string
	err       error
}

func (s *stubProvider) CreateSession(_ context.Context, _ *entity.Order, _ []*repository.LineWithProduct) (string, string, error) {
	return s.sessionID, s.url, s.err
}

func pedidoDe(userID string) *entity.Order {
	return &entity.Order{ID: "order-1", UserID: userID, Status: entity.OrderStatusPending}
}

func TestCreateSession_Exitoso(t *testing.T) {
	repo := &stubOrderRepo{order: pedidoDe("cliente-1")}
	provider := &stubProvider{sessionID: "cs_123", url: "https://checkout.example/cs_123"}
	uc := payments.NewPaymentUseCase(repo, provider)

	out, err := uc.CreateSession(context.Background(), "cliente-1", "order-1")
	require.NoError(t, err)

	assert.Equal(t, "cs_123", out.SessionID)
	assert.Equal(t, "https://checkout.example/cs_123", out.URL)
	assert.Equal(t, "cs_123", repo.paymentID, "el id de sesión se persiste en el pedido")
	assert.Equal(t, entity.PaymentStatusPending, repo.paymentStatus)
}

// Solo el dueño del pedido puede iniciar el pago.
func TestCreateSession_SoloElDueno(t *testing.T) {
	repo := &stubOrderRepo{order: pedidoDe("cliente-1")}
	uc := payments.NewPaymentUseCase(repo, &stubProvider{sessionID: "cs_123"})

	_, err := uc.CreateSession(context.Background(), "cliente-2", "order-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.paymentID, "el pedido no se toca")
}

func TestCreateSession_PedidoInexistente(t *testing.T) {
	uc := payments.NewPaymentUseCase(&stubOrderRepo{}, &stubProvider{})

	_, err := uc.CreateSession(context.Background(), "cliente-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un fallo del proveedor se reporta como error de servicio externo y el
// pedido queda intacto.
func TestCreateSession_FalloDelProveedor(t *testing.T) {
	repo := &stubOrderRepo{order: pedidoDe("cliente-1")}
	provider := &stubProvider{err: errors.New("timeout del proveedor")}
	uc := payments.NewPaymentUseCase(repo, provider)

	_, err := uc.CreateSession(context.Background(), "cliente-1", "order-1")
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Empty(t, repo.paymentID)
}

func TestCreateSession_OrderIDRequerido(t *testing.T) {
	uc := payments.NewPaymentUseCase(&stubOrderRepo{}, &stubProvider{})

	_, err := uc.CreateSession(context.Background(), "cliente-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
