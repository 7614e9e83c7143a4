//go:build unit

package product_test

import (
	"testing"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.ProductBuilder)
		errIs  error
	}{
		{name: "valid", mutate: func(*builder.ProductBuilder) {}},
		{name: "empty id NG", mutate: func(b *builder.ProductBuilder) { b.WithID(" ") }, errIs: product.ErrInvalidID},
		{name: "negative price NG", mutate: func(b *builder.ProductBuilder) { b.WithOriginalPrice(-1) }, errIs: product.ErrNegativePrice},
		{name: "negative stock NG", mutate: func(b *builder.ProductBuilder) { b.WithStock(-1) }, errIs: product.ErrNegativeStock},
		{name: "unknown status NG", mutate: func(b *builder.ProductBuilder) { b.WithStatus("closed") }, errIs: product.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
			tt.mutate(b)
			p, err := b.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.CurrentPrice().Equal(p.OriginalPrice()))
			assert.False(t, p.IsDiscounted())
		})
	}
}

func TestCatalog(t *testing.T) {
	a := builder.NewProductBuilder().WithID("A").WithTitle("Alpha").MustBuild()
	b := builder.NewProductBuilder().WithID("B").WithTitle("Beta").MustBuild()

	_, err := product.NewCatalog(a, a)
	assert.ErrorIs(t, err, product.ErrDuplicateID)

	c, err := product.NewCatalog(a, b)
	require.NoError(t, err)

	title, ok := c.TitleOf("B")
	assert.True(t, ok)
	assert.Equal(t, "Beta", title)
	_, ok = c.TitleOf("missing")
	assert.False(t, ok)

	toggled, err := c.Replace(b.WithStatus(b.Status().Toggled()))
	require.NoError(t, err)
	got, _ := toggled.Find("B")
	assert.Equal(t, product.StatusPaused, got.Status())
	orig, _ := c.Find("B")
	assert.Equal(t, product.StatusActive, orig.Status())

	_, err = c.Replace(builder.NewProductBuilder().WithID("Z").MustBuild())
	assert.ErrorIs(t, err, product.ErrProductMissing)
}

func TestCatalog_EqualComparesPricesByValue(t *testing.T) {
	a := builder.NewProductBuilder().WithID("A").MustBuild()
	c1 := builder.MustCatalog(a.WithCurrentPrice(decimal.RequireFromString("800")))
	c2 := builder.MustCatalog(a.WithCurrentPrice(decimal.RequireFromString("800.00")))

	assert.True(t, cmp.Equal(c1, c2))
	assert.False(t, cmp.Equal(c1, builder.MustCatalog(a)))
}
