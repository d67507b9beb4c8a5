package order

import (
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

// Actor es la identidad de la petición autenticada (provista por el middleware JWT).
type Actor struct {
	ID   string
	Role string
}

// CanView decide si el actor puede leer el pedido: el dueño, cualquier
// vendedor o cualquier administrador.
func CanView(actor Actor, ord *entity.Order) bool {
	if actor.ID == ord.UserID {
		return true
	}
	return actor.Role == entity.RoleSeller || actor.Role == entity.RoleAdministrator
}

// AuthorizeTransition es la política única de autorización de cambios de estado:
// recibe actor, pedido y estado destino, y decide permitir o denegar.
//
//   - CUSTOMER: solo DELIVERED (confirmación de entrega) y solo sobre su propio pedido.
//   - SELLER / ADMINISTRATOR: PREPARING, DISPATCHED y DELIVERED sobre cualquier pedido.
//     La autoridad del vendedor es global, no limitada a sus pedidos asignados
//     (comportamiento heredado del sistema, documentado en DESIGN.md).
//   - CANCELLED: solo ADMINISTRATOR.
//
// No valida el grafo de transiciones; eso es CanTransition. Las dos
// verificaciones son independientes y el caso de uso aplica ambas.
func AuthorizeTransition(actor Actor, ord *entity.Order, target string) error {
	switch actor.Role {
	case entity.RoleCustomer:
		if ord.UserID != actor.ID {
			return domain.ErrForbidden
		}
		if target != entity.OrderStatusDelivered {
			return domain.ErrForbidden
		}
		return nil
	case entity.RoleSeller:
		if target == entity.OrderStatusCancelled {
			return domain.ErrForbidden
		}
		return nil
	case entity.RoleAdministrator:
		return nil
	default:
		return domain.ErrForbidden
	}
}
