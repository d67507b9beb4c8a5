package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/application/orders"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func vendedor() *entity.User {
	return &entity.User{ID: "seller-1", Name: "Vendedor Teste", Role: entity.RoleSeller, Status: entity.UserStatusActive}
}

func producto(id, name, price string) *entity.Product {
	return &entity.Product{ID: id, Name: name, Price: dec(price), Available: true}
}

type createOrderFixture struct {
	uc        *orders.CreateOrderUseCase
	orderRepo *fakeOrderRepo
}

func newCreateOrderFixture(users []*entity.User, products []*entity.Product) *createOrderFixture {
	orderRepo := newFakeOrderRepo()
	uc := orders.NewCreateOrderUseCase(
		&fakeTxRunner{repo: orderRepo},
		newFakeUserRepo(users...),
		newFakeProductRepo(products...),
	)
	return &createOrderFixture{uc: uc, orderRepo: orderRepo}
}

func requestValido() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		SellerID:        "seller-1",
		DeliveryAddress: "Rua das Flores",
		DeliveryNumber:  "123",
		PaymentMethod:   "card",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
}

func TestCreateOrder_PedidoValido(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{
			producto("p1", "Heineken 600ml", "7.50"),
			producto("p2", "Skol 269ml", "2.19"),
		},
	)

	out, err := fx.uc.Create(context.Background(), "cliente-1", requestValido())
	require.NoError(t, err)

	// Total calculado del servidor: 7.50×2 + 2.19 = 17.19
	assert.True(t, out.TotalPrice.Equal(dec("17.19")),
		"total esperado 17.19, obtenido %s", out.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "todo pedido nace PENDING")
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
	assert.Equal(t, "cliente-1", out.UserID)
	assert.Equal(t, "seller-1", out.SellerID)
	require.Len(t, out.Items, 2)

	// Las líneas capturan el precio vigente del catálogo.
	assert.True(t, out.Items[0].UnitPrice.Equal(dec("7.50")))
	assert.True(t, out.Items[0].Subtotal.Equal(dec("15.00")))

	// Cabecera y líneas persistidas.
	assert.Len(t, fx.orderRepo.orders, 1)
	assert.Len(t, fx.orderRepo.lines, 2)
}

// Productos repetidos en el request se consolidan en una sola línea.
func TestCreateOrder_ConsolidaProductosRepetidos(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{producto("p1", "Brahma 600ml", "7.50")},
	)
	in := requestValido()
	in.Items = []dto.OrderItemRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
	}

	out, err := fx.uc.Create(context.Background(), "cliente-1", in)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.True(t, out.TotalPrice.Equal(dec("22.50")))
	assert.Len(t, fx.orderRepo.lines, 1)
}

func TestCreateOrder_CarritoVacio(t *testing.T) {
	fx := newCreateOrderFixture([]*entity.User{vendedor()}, nil)
	in := requestValido()
	in.Items = nil

	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_FaltanDatosDeEntrega(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{producto("p1", "Heineken 600ml", "7.50")},
	)
	in := requestValido()
	in.DeliveryAddress = ""

	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El sellerId debe resolver a un usuario con rol que permita vender.
func TestCreateOrder_VendedorInvalido(t *testing.T) {
	cliente := &entity.User{ID: "cliente-2", Role: entity.RoleCustomer}
	fx := newCreateOrderFixture(
		[]*entity.User{cliente},
		[]*entity.Product{producto("p1", "Heineken 600ml", "7.50")},
	)

	in := requestValido()
	in.SellerID = "cliente-2" // existe pero es CUSTOMER
	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.SellerID = "no-existe"
	_, err = fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un administrador también puede ser el vendedor asignado.
func TestCreateOrder_AdministradorComoVendedor(t *testing.T) {
	admin := &entity.User{ID: "admin-1", Name: "Fulana Pereira", Role: entity.RoleAdministrator}
	fx := newCreateOrderFixture(
		[]*entity.User{admin},
		[]*entity.Product{producto("p1", "Heineken 600ml", "7.50")},
	)
	in := requestValido()
	in.SellerID = "admin-1"
	in.Items = in.Items[:1]

	out, err := fx.uc.Create(context.Background(), "cliente-1", in)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", out.SellerID)
}

// Un producto desconocido aborta el pedido completo: nada se persiste.
func TestCreateOrder_ProductoDesconocidoAbortaTodo(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{producto("p1", "Heineken 600ml", "7.50")},
	)
	in := requestValido()
	in.Items = []dto.OrderItemRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "fantasma", Quantity: 1},
	}

	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.orderRepo.orders, "no debe quedar cabecera")
	assert.Empty(t, fx.orderRepo.lines, "no deben quedar líneas")
}

func TestCreateOrder_ProductoNoDisponible(t *testing.T) {
	apagado := producto("p1", "Becks 600ml", "8.89")
	apagado.Available = false
	fx := newCreateOrderFixture([]*entity.User{vendedor()}, []*entity.Product{apagado})
	in := requestValido()
	in.Items = []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}}

	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_CantidadInvalida(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{producto("p1", "Heineken 600ml", "7.50")},
	)
	in := requestValido()
	in.Items = []dto.OrderItemRequest{{ProductID: "p1", Quantity: 0}}

	_, err := fx.uc.Create(context.Background(), "cliente-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si falla el insert de una línea, la transacción descarta también la cabecera.
func TestCreateOrder_FalloEnLineaHaceRollback(t *testing.T) {
	fx := newCreateOrderFixture(
		[]*entity.User{vendedor()},
		[]*entity.Product{
			producto("p1", "Heineken 600ml", "7.50"),
			producto("p2", "Skol 269ml", "2.19"),
		},
	)
	fx.orderRepo.createLineFailsAt = 2

	_, err := fx.uc.Create(context.Background(), "cliente-1", requestValido())
	require.Error(t, err)
	assert.Empty(t, fx.orderRepo.orders, "rollback: sin cabecera")
	assert.Empty(t, fx.orderRepo.lines, "rollback: sin líneas")
}
