package cart

import (
	"testing"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serumProduct() *models.Product {
	return &models.Product{
		ID:    "p1",
		Name:  "Sérum Vitamina C Radiance",
		Brand: "Derma Lux",
		Price: decimal.NewFromFloat(159.90),
	}
}

func perfumeProduct() *models.Product {
	return &models.Product{
		ID:    "p2",
		Name:  "Eau de Parfum Lumière Dorée",
		Brand: "Maison Fleur",
		Price: decimal.NewFromFloat(289.90),
		Variants: []models.ProductVariant{
			{ID: "v50", ProductID: "p2", Name: "50ml", Price: decimal.NewFromFloat(289.90)},
			{ID: "v100", ProductID: "p2", Name: "100ml", Price: decimal.NewFromFloat(389.90)},
		},
	}
}

func TestAddItemMergesSameLine(t *testing.T) {
	c := New()
	p := serumProduct()

	c.AddItem(p, "")
	c.AddItem(p, "")
	c.AddItem(p, "")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(159.90)))
}

func TestAddItemkeepsFirstAddPrice(t *testing.T) {
	c := New()
	p := serumProduct()

	c.AddItem(p, "")
	p.Price = decimal.NewFromFloat(199.90)
	c.AddItem(p, "")

	items := c.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(159.90)),
		"preço da primeira adição deve prevalecer")
}

func TestAddItemVariantCreatesDistinctLine(t *testing.T) {
	c := New()
	p := perfumeProduct()

	c.AddItem(p, "")
	c.AddItem(p, "v100")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].LineKey)
	assert.Equal(t, "p2-v100", items[1].LineKey)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(289.90)))
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromFloat(389.90)))
	assert.Equal(t, "100ml", items[1].VariantName)
}

func TestAddItemUnknownVariantFallsBackToBasePrice(t *testing.T) {
	c := New()
	p := perfumeProduct()

	c.AddItem(p, "v999")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2-v999", items[0].LineKey)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(289.90)))
	assert.Empty(t, items[0].VariantName)
}

func TestAddItemOpensCart(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen())
	c.AddItem(serumProduct(), "")
	assert.True(t, c.IsOpen())

	c.SetOpen(false)
	assert.False(t, c.IsOpen())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	c := New()
	c.AddItem(serumProduct(), "")
	c.UpdateQuantity("p1", 0)
	assert.Empty(t, c.Items())

	c.AddItem(serumProduct(), "")
	c.UpdateQuantity("p1", -1)
	assert.Empty(t, c.Items())
}

func TestUpdateQuantityAbsoluteSet(t *testing.T) {
	c := New()
	c.AddItem(serumProduct(), "")
	c.UpdateQuantity("p1", 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, 5, c.TotalItems())
}

func TestRemoveItemAbsentKeyIsNoop(t *testing.T) {
	c := New()
	c.AddItem(serumProduct(), "")
	c.RemoveItem("nao-existe")
	assert.Len(t, c.Items(), 1)

	c.UpdateQuantity("nao-existe", 4)
	assert.Equal(t, 1, c.TotalItems())
}

func TestSubtotalSumsLines(t *testing.T) {
	c := New()
	serum := serumProduct()
	perfume := perfumeProduct()

	c.AddItem(serum, "")
	c.AddItem(serum, "")
	c.AddItem(perfume, "v100")
	gloss := &models.Product{ID: "p3", Name: "Gloss Labial Liphoney Mel", Price: decimal.NewFromFloat(26.00)}
	c.AddItem(gloss, "")

	// 2×159.90 + 389.90 + 26.00
	want := decimal.NewFromFloat(735.70)
	assert.True(t, c.Subtotal().Equal(want), "subtotal %s != %s", c.Subtotal(), want)
}

func TestApplyCouponTable(t *testing.T) {
	c := New()
	p := &models.Product{ID: "p1", Name: "Kit", Price: decimal.NewFromFloat(100.00)}
	c.AddItem(p, "")
	c.UpdateQuantity("p1", 2) // subtotal 200.00

	c.SetCoupon("beleza10")
	c.ApplyCoupon()
	assert.True(t, c.DiscountAmount().Equal(decimal.NewFromFloat(20.00)))

	c.SetCoupon("PRIMEIRA")
	c.ApplyCoupon()
	assert.True(t, c.DiscountAmount().Equal(decimal.NewFromFloat(30.00)))
	assert.True(t, c.Total().Equal(decimal.NewFromFloat(170.00)))

	c.SetCoupon("INVALID")
	c.ApplyCoupon()
	assert.True(t, c.DiscountAmount().IsZero())
}

func TestSetCouponDoesNotRecompute(t *testing.T) {
	c := New()
	p := &models.Product{ID: "p1", Name: "Kit", Price: decimal.NewFromFloat(200.00)}
	c.AddItem(p, "")

	c.SetCoupon("BELEZA10")
	assert.True(t, c.DiscountAmount().IsZero(), "SetCoupon não aplica desconto sozinho")
}

func TestDiscountIsSnapshotUntilReapplied(t *testing.T) {
	c := New()
	p := &models.Product{ID: "p1", Name: "Kit", Price: decimal.NewFromFloat(200.00)}
	c.AddItem(p, "")
	c.SetCoupon("BELEZA10")
	c.ApplyCoupon()
	require.True(t, c.DiscountAmount().Equal(decimal.NewFromFloat(20.00)))

	// Adding items does not touch the applied discount.
	other := &models.Product{ID: "p9", Name: "Batom", Price: decimal.NewFromFloat(89.90)}
	c.AddItem(other, "")
	assert.True(t, c.DiscountAmount().Equal(decimal.NewFromFloat(20.00)))

	// Reapplying recomputes against the new subtotal.
	c.ApplyCoupon()
	assert.True(t, c.DiscountAmount().Equal(decimal.NewFromFloat(28.99)))
}

func TestApplyCouponIdempotent(t *testing.T) {
	c := New()
	p := &models.Product{ID: "p1", Name: "Kit", Price: decimal.NewFromFloat(200.00)}
	c.AddItem(p, "")
	c.SetCoupon("BELEZA10")

	c.ApplyCoupon()
	first := c.DiscountAmount()
	c.ApplyCoupon()
	assert.True(t, c.DiscountAmount().Equal(first))
}

func TestClearKeepsCoupon(t *testing.T) {
	c := New()
	c.AddItem(serumProduct(), "")
	c.SetCoupon("BELEZA10")
	c.ApplyCoupon()

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, "BELEZA10", c.CouponCode())
	// Desconto permanece até ApplyCoupon rodar de novo sobre o subtotal zero.
	assert.False(t, c.DiscountAmount().IsZero())
	assert.True(t, c.Total().IsZero(), "total nunca fica negativo")
}

func TestEndToEndScenario(t *testing.T) {
	c := New()
	p1 := serumProduct()
	p2 := perfumeProduct()

	c.AddItem(p1, "")
	c.AddItem(p1, "")
	c.AddItem(p2, "v50")

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 3, c.TotalItems())

	c.UpdateQuantity(LineKey(p1.ID, ""), 5)
	assert.Equal(t, 6, c.TotalItems())

	c.RemoveItem(LineKey(p2.ID, "v50"))
	assert.Len(t, c.Items(), 1)
}

func TestSnapshotIsImmutableCopy(t *testing.T) {
	c := New()
	c.AddItem(serumProduct(), "")
	snap := c.Snapshot()
	require.False(t, snap.Empty())
	assert.True(t, snap.Total.Equal(decimal.NewFromFloat(159.90)))

	// Mutating the cart after the snapshot does not change it.
	c.Clear()
	assert.Len(t, snap.Items, 1)
	assert.True(t, snap.Subtotal.Equal(decimal.NewFromFloat(159.90)))
}
