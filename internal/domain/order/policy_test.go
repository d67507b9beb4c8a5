package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/order"
)

func pedidoDe(userID string) *entity.Order {
	return &entity.Order{
		ID:     "order-1",
		UserID: userID,
		Status: entity.OrderStatusDispatched,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeTransition
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeTransition_ClienteConfirmaEntregaDePedidoPropio(t *testing.T) {
	actor := order.Actor{ID: "cliente-1", Role: entity.RoleCustomer}

	err := order.AuthorizeTransition(actor, pedidoDe("cliente-1"), entity.OrderStatusDelivered)
	assert.NoError(t, err, "el cliente confirma la entrega de su propio pedido")
}

func TestAuthorizeTransition_ClienteNoTocaPedidoAjeno(t *testing.T) {
	actor := order.Actor{ID: "cliente-1", Role: entity.RoleCustomer}

	err := order.AuthorizeTransition(actor, pedidoDe("otro-cliente"), entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El cliente solo puede llevar su pedido a DELIVERED, nunca a estados intermedios.
func TestAuthorizeTransition_ClienteNoAvanzaEstadosIntermedios(t *testing.T) {
	actor := order.Actor{ID: "cliente-1", Role: entity.RoleCustomer}
	ord := pedidoDe("cliente-1")

	for _, target := range []string{
		entity.OrderStatusPreparing,
		entity.OrderStatusDispatched,
		entity.OrderStatusCancelled,
	} {
		err := order.AuthorizeTransition(actor, ord, target)
		assert.ErrorIs(t, err, domain.ErrForbidden, "cliente → %s debe denegarse", target)
	}
}

// La autoridad del vendedor es global: cualquier pedido, no solo los asignados.
func TestAuthorizeTransition_VendedorOperaCualquierPedido(t *testing.T) {
	actor := order.Actor{ID: "vendedor-1", Role: entity.RoleSeller}
	ord := pedidoDe("cliente-ajeno")

	for _, target := range []string{
		entity.OrderStatusPreparing,
		entity.OrderStatusDispatched,
		entity.OrderStatusDelivered,
	} {
		assert.NoError(t, order.AuthorizeTransition(actor, ord, target),
			"vendedor → %s debe permitirse", target)
	}
}

func TestAuthorizeTransition_VendedorNoCancela(t *testing.T) {
	actor := order.Actor{ID: "vendedor-1", Role: entity.RoleSeller}

	err := order.AuthorizeTransition(actor, pedidoDe("cliente-1"), entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrForbidden, "cancelar es exclusivo del administrador")
}

func TestAuthorizeTransition_AdministradorTodoPermitido(t *testing.T) {
	actor := order.Actor{ID: "admin-1", Role: entity.RoleAdministrator}
	ord := pedidoDe("cliente-1")

	for _, target := range []string{
		entity.OrderStatusPreparing,
		entity.OrderStatusDispatched,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	} {
		assert.NoError(t, order.AuthorizeTransition(actor, ord, target))
	}
}

// Rol desconocido o vacío: denegación por defecto.
func TestAuthorizeTransition_RolDesconocidoDenegado(t *testing.T) {
	for _, role := range []string{"", "ROOT", "customer"} {
		actor := order.Actor{ID: "x", Role: role}
		err := order.AuthorizeTransition(actor, pedidoDe("x"), entity.OrderStatusDelivered)
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %q debe denegarse", role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanView
// ──────────────────────────────────────────────────────────────────────────────

func TestCanView(t *testing.T) {
	ord := pedidoDe("cliente-1")

	assert.True(t, order.CanView(order.Actor{ID: "cliente-1", Role: entity.RoleCustomer}, ord),
		"el dueño ve su pedido")
	assert.False(t, order.CanView(order.Actor{ID: "cliente-2", Role: entity.RoleCustomer}, ord),
		"otro cliente no ve el pedido")
	assert.True(t, order.CanView(order.Actor{ID: "vendedor-1", Role: entity.RoleSeller}, ord))
	assert.True(t, order.CanView(order.Actor{ID: "admin-1", Role: entity.RoleAdministrator}, ord))
	assert.False(t, order.CanView(order.Actor{ID: "x", Role: ""}, ord))
}
