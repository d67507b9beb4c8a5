// Package order contiene la máquina de estados del pedido y la política de
// autorización de transiciones, separadas del HTTP y de la persistencia.
package order

import "github.com/jhoicas/delivery-api/internal/domain/entity"

// transitions define el grafo dirigido de transiciones permitidas.
// El flujo solo avanza: PENDING → PREPARING → DISPATCHED → DELIVERED.
// CANCELLED es un estado absorbente alcanzable desde cualquier estado no terminal.
var transitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing:  {entity.OrderStatusDispatched, entity.OrderStatusCancelled},
	entity.OrderStatusDispatched: {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
	entity.OrderStatusDelivered:  {},
	entity.OrderStatusCancelled:  {},
}

// IsValidStatus indica si s es un estado conocido.
func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(s string) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition indica si la transición from → to está en el grafo.
// No contempla idempotencia (from == to): eso lo decide el caso de uso.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
