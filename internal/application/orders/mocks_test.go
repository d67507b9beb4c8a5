package orders_test

import (
	"context"
	"errors"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de pedidos. Sin framework de mocks:
// structs simples con el estado justo para cada escenario.

// ──────────────────────────────────────────────────────────────────────────────
// UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListSellers(_ context.Context) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListSellersWithOrderCount(_ context.Context) ([]*repository.SellerSummary, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) ListAvailable(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	lines  []*entity.OrderLine

	// createLineFailsAt > 0 hace fallar CreateLine en esa llamada (1-based),
	// para simular un fallo a mitad de la transacción.
	createLineFailsAt int
	createLineCalls   int

	// conditionalUpdateOK simula el resultado del UPDATE condicional:
	// false significa que otra petición ganó la carrera.
	conditionalUpdateOK bool
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	m := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m, conditionalUpdateOK: true}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) CreateLine(_ context.Context, line *entity.OrderLine) error {
	f.createLineCalls++
	if f.createLineFailsAt > 0 && f.createLineCalls == f.createLineFailsAt {
		return errors.New("fallo simulado al insertar línea")
	}
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetLinesByOrderID(_ context.Context, orderID string) ([]*repository.LineWithProduct, error) {
	out := []*repository.LineWithProduct{}
	for _, l := range f.lines {
		if l.OrderID == orderID {
			out = append(out, &repository.LineWithProduct{Line: l})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]*repository.OrderWithCustomer, error) {
	out := []*repository.OrderWithCustomer{}
	for _, o := range f.orders {
		out = append(out, &repository.OrderWithCustomer{Order: o})
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatusIfCurrent(_ context.Context, id, from, to string) (bool, error) {
	if !f.conditionalUpdateOK {
		return false, nil
	}
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (f *fakeOrderRepo) UpdatePayment(_ context.Context, id, paymentID, paymentStatus string) error {
	if o, ok := f.orders[id]; ok {
		o.PaymentID = paymentID
		o.PaymentStatus = paymentStatus
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn contra el repo dado. Si fn falla, descarta lo escrito
// durante la transacción (rollback simulado sobre una copia).
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx := &fakeOrderRepo{
		orders:              map[string]*entity.Order{},
		createLineFailsAt:   r.repo.createLineFailsAt,
		conditionalUpdateOK: r.repo.conditionalUpdateOK,
	}
	for k, v := range r.repo.orders {
		tx.orders[k] = v
	}
	tx.lines = append(tx.lines, r.repo.lines...)

	if err := fn(tx); err != nil {
		return err
	}
	r.repo.orders = tx.orders
	r.repo.lines = tx.lines
	return nil
}
