package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/delivery-api/internal/domain/cart"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCart_NuevoEstaVacio(t *testing.T) {
	c := cart.New()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero), "el total de un carrito vacío es cero")
}

// El subtotal nunca acumula error de flotante: 7.50 × 2 debe ser exactamente 15.00.
func TestCart_SubtotalDecimalExacto(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Heineken 600ml", dec("7.50"), 2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].SubTotal.Equal(dec("15.00")),
		"subtotal esperado 15.00, obtenido %s", lines[0].SubTotal)
	assert.True(t, c.TotalPrice().Equal(dec("15.00")))
	assert.Equal(t, 2, c.TotalItems())
}

// Agregar el mismo producto dos veces consolida en una sola línea.
func TestCart_AddItemConsolidaProductoRepetido(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Skol Lata 250ml", dec("2.20"), 1)
	c.AddItem("p1", "Skol Lata 250ml", dec("2.20"), 2)

	lines := c.Lines()
	require.Len(t, lines, 1, "el mismo producto no genera líneas duplicadas")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, c.TotalPrice().Equal(dec("6.60")))
}

func TestCart_TotalEsSumaDeSubtotales(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Heineken 600ml", dec("7.50"), 2)
	c.AddItem("p2", "Skol 269ml", dec("2.19"), 3)
	c.AddItem("p3", "Stella Artois 275ml", dec("3.49"), 1)

	// 15.00 + 6.57 + 3.49 = 25.06
	assert.True(t, c.TotalPrice().Equal(dec("25.06")),
		"total esperado 25.06, obtenido %s", c.TotalPrice())
	assert.Equal(t, 6, c.TotalItems())
}

// Las líneas conservan el orden de inserción.
func TestCart_LineasEnOrdenDeInsercion(t *testing.T) {
	c := cart.New()
	c.AddItem("p2", "Becks 330ml", dec("4.99"), 1)
	c.AddItem("p1", "Brahma 600ml", dec("7.50"), 1)
	c.AddItem("p3", "Skol 269ml", dec("2.19"), 1)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"p2", "p1", "p3"},
		[]string{lines[0].ProductID, lines[1].ProductID, lines[2].ProductID})
}

// Cantidad que dejaría la línea por debajo de 1 es un no-op.
func TestCart_AddItemCantidadInvalidaEsNoOp(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Brahma 600ml", dec("7.50"), 0)
	assert.True(t, c.IsEmpty(), "cantidad 0 en producto nuevo no inserta línea")

	c.AddItem("p1", "Brahma 600ml", dec("7.50"), 2)
	c.AddItem("p1", "Brahma 600ml", dec("7.50"), -5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity, "decremento que cruza cero no se aplica")
}

// Decremento válido sobre línea existente sí se aplica.
func TestCart_AddItemDecrementoValido(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Becks 600ml", dec("8.89"), 3)
	c.AddItem("p1", "Becks 600ml", dec("8.89"), -2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.True(t, c.TotalPrice().Equal(dec("8.89")))
}

func TestCart_UpdateItemFijaCantidad(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Antarctica Pilsen 300ml", dec("2.49"), 1)
	c.UpdateItem("p1", 4)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.True(t, c.TotalPrice().Equal(dec("9.96")))
}

// UpdateItem con cantidad ≤ 0 elimina la línea.
func TestCart_UpdateItemCeroElimina(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Skol Beats Senses 313ml", dec("4.49"), 2)
	c.UpdateItem("p1", 0)

	assert.True(t, c.IsEmpty())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero))
}

// UpdateItem sobre producto ausente es un no-op, no inserta.
func TestCart_UpdateItemProductoAusenteEsNoOp(t *testing.T) {
	c := cart.New()
	c.UpdateItem("fantasma", 3)

	assert.True(t, c.IsEmpty())
}

func TestCart_RemoveItemRecalculaTotales(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Heineken 600ml", dec("7.50"), 2)
	c.AddItem("p2", "Skol 269ml", dec("2.19"), 1)
	c.RemoveItem("p1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.True(t, c.TotalPrice().Equal(dec("2.19")))
	assert.Equal(t, 1, c.TotalItems())
}

func TestCart_ClearVaciaTodo(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Brahma Duplo Malte 350ml", dec("2.79"), 5)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero))
}

// Lines devuelve una copia: mutar el slice devuelto no toca el carrito.
func TestCart_LinesDevuelveCopia(t *testing.T) {
	c := cart.New()
	c.AddItem("p1", "Becks 330ml", dec("4.99"), 1)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.Equal(t, 1, c.TotalItems())
}
