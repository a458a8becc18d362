package cart

import (
	"testing"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStoreGetOrCreateIsStable(t *testing.T) {
	s := NewStore()
	a := s.GetOrCreate("sess-1")
	b := s.GetOrCreate("sess-1")
	assert.Same(t, a, b)

	other := s.GetOrCreate("sess-2")
	assert.NotSame(t, a, other)
}

func TestStoreTotalItems(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.TotalItems("sess-1"))

	c := s.GetOrCreate("sess-1")
	c.AddItem(&models.Product{ID: "p1", Name: "Batom", Price: decimal.NewFromFloat(89.90)}, "")
	c.AddItem(&models.Product{ID: "p1", Name: "Batom", Price: decimal.NewFromFloat(89.90)}, "")
	assert.Equal(t, 2, s.TotalItems("sess-1"))
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("sess-1")
	s.Delete("sess-1")
	assert.Nil(t, s.Get("sess-1"))
}
