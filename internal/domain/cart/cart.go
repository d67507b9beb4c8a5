// Package cart implementa el agregador de carrito: una proyección pura de
// líneas {producto, cantidad} con totales derivados. No persiste nada; el
// carrito vive en el cliente y el checkout lo usa para consolidar líneas
// duplicadas y calcular el total del lado del servidor.
package cart

import "github.com/shopspring/decimal"

// Line es una línea del carrito. SubTotal siempre es Price × Quantity.
type Line struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	SubTotal  decimal.Decimal
}

// Cart acumula líneas en orden de inserción y mantiene totales derivados.
type Cart struct {
	lines      []Line
	totalPrice decimal.Decimal
	totalItems int
}

// New construye un carrito vacío.
func New() *Cart {
	return &Cart{totalPrice: decimal.Zero}
}

// AddItem agrega quantity unidades del producto. Si el producto ya está en el
// carrito incrementa su cantidad; si no, inserta una línea nueva. Si la
// cantidad resultante fuera menor que 1 la operación es un no-op.
func (c *Cart) AddItem(productID, name string, price decimal.Decimal, quantity int) {
	if i := c.indexOf(productID); i >= 0 {
		if c.lines[i].Quantity+quantity < 1 {
			return
		}
		c.lines[i].Quantity += quantity
	} else {
		if quantity < 1 {
			return
		}
		c.lines = append(c.lines, Line{
			ProductID: productID,
			Name:      name,
			Price:     price,
			Quantity:  quantity,
		})
	}
	c.recompute()
}

// UpdateItem fija la cantidad de la línea. Cantidad ≤ 0 equivale a RemoveItem.
// Si el producto no está en el carrito es un no-op.
func (c *Cart) UpdateItem(productID string, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.lines[i].Quantity = quantity
	c.recompute()
}

// RemoveItem elimina la línea del producto.
func (c *Cart) RemoveItem(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.recompute()
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
	c.recompute()
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice es la suma de los subtotales de todas las líneas.
func (c *Cart) TotalPrice() decimal.Decimal { return c.totalPrice }

// TotalItems es la suma de las cantidades de todas las líneas.
func (c *Cart) TotalItems() int { return c.totalItems }

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// recompute recalcula subtotales y totales desde cero después de cada
// mutación. Nunca se parchan incrementalmente: el recálculo completo es el
// invariante de corrección (totalPrice == Σ subTotal, subTotal == price × qty).
func (c *Cart) recompute() {
	total := decimal.Zero
	items := 0
	for i := range c.lines {
		c.lines[i].SubTotal = c.lines[i].Price.Mul(decimal.NewFromInt(int64(c.lines[i].Quantity)))
		total = total.Add(c.lines[i].SubTotal)
		items += c.lines[i].Quantity
	}
	c.totalPrice = total
	c.totalItems = items
}
