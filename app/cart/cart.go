package cart

import (
	"sync"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/calc"
	"github.com/shopspring/decimal"
)

// LineItem é uma linha do carrinho. O preço unitário é congelado no primeiro
// AddItem e não acompanha alterações posteriores do catálogo.
type LineItem struct {
	LineKey     string
	Product     *models.Product
	VariantID   string
	VariantName string
	Qty         int
	UnitPrice   decimal.Decimal
}

func (li *LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Qty)))
}

// DisplayName returns the product name, suffixed with the variant when one
// was selected.
func (li *LineItem) DisplayName() string {
	if li.VariantName == "" {
		return li.Product.Name
	}
	return li.Product.Name + " - " + li.VariantName
}

// LineKey deriva a identidade de uma linha: produto sozinho, ou
// produto+variante quando uma variante foi escolhida.
func LineKey(productID, variantID string) string {
	if variantID == "" {
		return productID
	}
	return productID + "-" + variantID
}

// Cart mantém as linhas em ordem de inserção, com no máximo uma linha por
// LineKey. Todas as mutações passam pelo mutex: o agregado tem um único dono.
type Cart struct {
	mu             sync.Mutex
	items          []*LineItem
	couponCode     string
	discountAmount decimal.Decimal
	open           bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem resolve a linha e o preço unitário e mescla quantidades quando a
// mesma combinação produto+variante já está no carrinho. Uma variante
// desconhecida cai silenciosamente no preço base do produto; o carrinho
// nunca sinaliza erro. Abre o carrinho para exibição.
func (c *Cart) AddItem(product *models.Product, variantID string) {
	if product == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	price := product.Price
	variantName := ""
	if variantID != "" {
		if variant := product.FindVariant(variantID); variant != nil {
			price = variant.Price
			variantName = variant.Name
		}
	}

	key := LineKey(product.ID, variantID)
	if existing := c.find(key); existing != nil {
		existing.Qty++
		c.open = true
		return
	}

	c.items = append(c.items, &LineItem{
		LineKey:     key,
		Product:     product,
		VariantID:   variantID,
		VariantName: variantName,
		Qty:         1,
		UnitPrice:   price,
	})
	c.open = true
}

// RemoveItem tira a linha do carrinho; chave ausente é um no-op.
func (c *Cart) RemoveItem(lineKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(lineKey)
}

// UpdateQuantity define a quantidade absoluta da linha. Quantidade menor ou
// igual a zero remove a linha. Não há limite superior.
func (c *Cart) UpdateQuantity(lineKey string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.remove(lineKey)
		return
	}
	if item := c.find(lineKey); item != nil {
		item.Qty = qty
	}
}

// Clear esvazia as linhas. Cupom e desconto ficam como estão.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// SetCoupon guarda o código sem recalcular nada. O desconto só muda quando
// ApplyCoupon é chamado.
func (c *Cart) SetCoupon(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.couponCode = code
}

// ApplyCoupon recalcula o desconto a partir do código atual e do subtotal
// atual. Código desconhecido zera o desconto, sem erro.
func (c *Cart) ApplyCoupon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discountAmount = DiscountFor(c.couponCode, c.subtotal())
}

func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items devolve uma cópia das linhas na ordem de inserção.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]LineItem, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	return items
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Qty
	}
	return total
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

func (c *Cart) CouponCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.couponCode
}

func (c *Cart) DiscountAmount() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discountAmount
}

// Total é subtotal menos desconto, limitado em zero.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return calc.CalculateGrandTotal(c.subtotal(), c.discountAmount)
}

// Snapshot congela o estado do carrinho para o checkout. O chamador só deve
// chamar Clear depois que o pedido foi confirmado; em caso de falha o
// snapshot pode ser reenviado sem cobrança dupla.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	subtotal := c.subtotal()
	return Snapshot{
		Items:          items,
		Subtotal:       subtotal,
		CouponCode:     c.couponCode,
		DiscountAmount: c.discountAmount,
		Total:          calc.CalculateGrandTotal(subtotal, c.discountAmount),
	}
}

// Snapshot é uma visão imutável do carrinho no momento do checkout.
type Snapshot struct {
	Items          []LineItem
	Subtotal       decimal.Decimal
	CouponCode     string
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

func (c *Cart) find(lineKey string) *LineItem {
	for _, item := range c.items {
		if item.LineKey == lineKey {
			return item
		}
	}
	return nil
}

func (c *Cart) remove(lineKey string) {
	for i, item := range c.items {
		if item.LineKey == lineKey {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}
