package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	failCreate bool
	created    *models.Order
	items      []models.OrderItem
	calls      int
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	f.calls++
	if f.failCreate {
		return errors.New("db unavailable")
	}
	f.created = order
	f.items = items
	return nil
}

func (f *fakeOrderRepo) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	if f.created == nil {
		return nil, nil
	}
	return []models.Order{*f.created}, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	return nil
}

func checkoutCart() *cart.Cart {
	c := cart.New()
	serum := &models.Product{ID: "p1", Name: "Sérum Vitamina C Radiance", Price: decimal.NewFromFloat(159.90)}
	gloss := &models.Product{ID: "p2", Name: "Gloss Labial Liphoney Mel", Price: decimal.NewFromFloat(26.00)}
	c.AddItem(serum, "")
	c.AddItem(serum, "")
	c.AddItem(gloss, "")
	return c
}

func TestPlaceOrderPersistsHeaderAndLines(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewCheckoutService(repo, nil, nil, nil)

	c := checkoutCart()
	c.SetCoupon("BELEZA10")
	c.ApplyCoupon()

	order, err := svc.PlaceOrder(context.Background(), "user-1", c.Snapshot())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Regexp(t, `^PED-\d{8}-[0-9a-f]{8}$`, order.OrderNumber)
	require.Len(t, repo.items, 2)
	assert.Equal(t, 2, repo.items[0].Qty)

	// 345.80 de subtotal, 10% de desconto
	assert.True(t, order.Subtotal.Equal(decimal.NewFromFloat(345.80)))
	assert.True(t, order.DiscountAmount.Equal(decimal.NewFromFloat(34.58)))
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(311.22)))
	assert.Equal(t, "BELEZA10", order.CouponCode)
}

func TestPlaceOrderFailureLeavesCartRetryable(t *testing.T) {
	repo := &fakeOrderRepo{failCreate: true}
	svc := NewCheckoutService(repo, nil, nil, nil)

	c := checkoutCart()
	snap := c.Snapshot()

	_, err := svc.PlaceOrder(context.Background(), "user-1", snap)
	require.Error(t, err)

	// O carrinho não foi limpo: o mesmo snapshot pode ser reenviado.
	repo.failCreate = false
	order, err := svc.PlaceOrder(context.Background(), "user-1", snap)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
	assert.True(t, order.Total.Equal(snap.Total))
}

func TestPlaceOrderRequiresUserAndItems(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewCheckoutService(repo, nil, nil, nil)

	_, err := svc.PlaceOrder(context.Background(), "", checkoutCart().Snapshot())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.PlaceOrder(context.Background(), "user-1", cart.New().Snapshot())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, repo.calls)
}

func TestPlaceOrderVariantLineNaming(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewCheckoutService(repo, nil, nil, nil)

	perfume := &models.Product{
		ID:    "p3",
		Name:  "Eau de Parfum Lumière Dorée",
		Price: decimal.NewFromFloat(289.90),
		Variants: []models.ProductVariant{
			{ID: "v100", Name: "100ml", Price: decimal.NewFromFloat(389.90)},
		},
	}
	c := cart.New()
	c.AddItem(perfume, "v100")

	_, err := svc.PlaceOrder(context.Background(), "user-1", c.Snapshot())
	require.NoError(t, err)
	require.Len(t, repo.items, 1)
	assert.Equal(t, "Eau de Parfum Lumière Dorée - 100ml", repo.items[0].ProductName)
	assert.Equal(t, "v100", repo.items[0].VariantID)
	assert.True(t, repo.items[0].Price.Equal(decimal.NewFromFloat(389.90)))
}
