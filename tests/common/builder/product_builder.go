//go:build unit || e2e

package builder

import (
	"flashsale-scheduler/internal/domain/product"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID            string
	Title         string
	Category      string
	Image         string
	Permalink     string
	Stock         int
	OriginalPrice decimal.Decimal
	CurrentPrice  *decimal.Decimal
	Status        string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:            "MLM-1001",
		Title:         "Sony WH-1000XM5 Headphones",
		Category:      "Electronics",
		Image:         "https://example.com/sony.jpg",
		Permalink:     "https://example.com/MLM-1001",
		Stock:         45,
		OriginalPrice: decimal.NewFromInt(1000),
		Status:        "active",
	}
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.Title = title
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

func (b *ProductBuilder) WithOriginalPrice(price int64) *ProductBuilder {
	b.OriginalPrice = decimal.NewFromInt(price)
	return b
}

func (b *ProductBuilder) WithCurrentPrice(price int64) *ProductBuilder {
	p := decimal.NewFromInt(price)
	b.CurrentPrice = &p
	return b
}

func (b *ProductBuilder) WithStatus(status string) *ProductBuilder {
	b.Status = status
	return b
}

func (b *ProductBuilder) attrs() product.Attributes {
	return product.Attributes{
		Title:     b.Title,
		Category:  b.Category,
		Image:     b.Image,
		Permalink: b.Permalink,
		Stock:     b.Stock,
	}
}

func (b *ProductBuilder) BuildDomain() (product.Product, error) {
	status, err := product.NewStatus(b.Status)
	if err != nil {
		return product.Product{}, err
	}
	p, err := product.NewProduct(b.ID, b.attrs(), b.OriginalPrice, status)
	if err != nil {
		return product.Product{}, err
	}
	if b.CurrentPrice != nil {
		p = p.WithCurrentPrice(*b.CurrentPrice)
	}
	return p, nil
}

// MustBuild is for fixtures that are known to be valid.
func (b *ProductBuilder) MustBuild() product.Product {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func MustCatalog(items ...product.Product) product.Catalog {
	c, err := product.NewCatalog(items...)
	if err != nil {
		panic(err)
	}
	return c
}
