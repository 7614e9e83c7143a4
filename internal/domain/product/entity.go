package product

import (
	"strings"
)

// Product is a catalog listing. originalPrice is fixed at ingestion; currentPrice is owned by the
// reconciliation engine and only ever replaced through WithCurrentPrice on a copy.
type Product struct {
	id            string
	title         string
	category      string
	image         string
	permalink     string
	stock         int
	originalPrice Price
	currentPrice  Price
	status        Status
}

type Attributes struct {
	Title     string
	Category  string
	Image     string
	Permalink string
	Stock     int
}

func NewProduct(id string, attrs Attributes, originalPrice Price, status Status) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrInvalidID
	}
	if _, err := NewPrice(originalPrice); err != nil {
		return Product{}, err
	}
	if attrs.Stock < 0 {
		return Product{}, ErrNegativeStock
	}
	if !status.IsValid() {
		return Product{}, ErrInvalidStatus
	}

	return Product{
		id:            id,
		title:         attrs.Title,
		category:      attrs.Category,
		image:         attrs.Image,
		permalink:     attrs.Permalink,
		stock:         attrs.Stock,
		originalPrice: originalPrice,
		currentPrice:  originalPrice,
		status:        status,
	}, nil
}

// ReconstructProduct rebuilds a product from storage, keeping the stored current price.
func ReconstructProduct(id string, attrs Attributes, originalPrice, currentPrice Price, status Status) Product {
	return Product{
		id:            id,
		title:         attrs.Title,
		category:      attrs.Category,
		image:         attrs.Image,
		permalink:     attrs.Permalink,
		stock:         attrs.Stock,
		originalPrice: originalPrice,
		currentPrice:  currentPrice,
		status:        status,
	}
}

func (p Product) ID() string           { return p.id }
func (p Product) Title() string        { return p.title }
func (p Product) Category() string     { return p.category }
func (p Product) Image() string        { return p.image }
func (p Product) Permalink() string    { return p.permalink }
func (p Product) Stock() int           { return p.stock }
func (p Product) OriginalPrice() Price { return p.originalPrice }
func (p Product) CurrentPrice() Price  { return p.currentPrice }
func (p Product) Status() Status       { return p.status }
func (p Product) IsPaused() bool       { return p.status == StatusPaused }
func (p Product) IsDiscounted() bool   { return !p.currentPrice.Equal(p.originalPrice) }
func (p Product) Attributes() Attributes {
	return Attributes{
		Title:     p.title,
		Category:  p.category,
		Image:     p.image,
		Permalink: p.permalink,
		Stock:     p.stock,
	}
}

func (p Product) WithCurrentPrice(price Price) Product {
	p.currentPrice = price
	return p
}

func (p Product) WithStatus(status Status) Product {
	p.status = status
	return p
}

// Equal reports field-wise equality, comparing prices by value (800 == 800.00).
func (p Product) Equal(o Product) bool {
	return p.id == o.id &&
		p.title == o.title &&
		p.category == o.category &&
		p.image == o.image &&
		p.permalink == o.permalink &&
		p.stock == o.stock &&
		p.originalPrice.Equal(o.originalPrice) &&
		p.currentPrice.Equal(o.currentPrice) &&
		p.status == o.status
}
