package marketplace

import (
	"flashsale-scheduler/internal/domain/product"

	"github.com/shopspring/decimal"
)

type seedItem struct {
	id       string
	title    string
	category string
	image    string
	stock    int
	original int64
	current  int64
	status   product.Status
}

var demoItems = []seedItem{
	{"MLM-1001", "Sony WH-1000XM5 Wireless Headphones", "Electronics", "https://picsum.photos/id/1/300/300", 12, 6500, 6500, product.StatusActive},
	{"MLM-1002", "Samsung Galaxy S23 Ultra 512GB", "Phones", "https://picsum.photos/id/2/300/300", 5, 25999, 25999, product.StatusActive},
	{"MLM-1003", "Nike Air Force 1 White Sneakers", "Fashion", "https://picsum.photos/id/3/300/300", 45, 2100, 2100, product.StatusPaused},
	{"MLM-1004", "Nintendo Switch OLED Neon", "Video games", "https://picsum.photos/id/4/300/300", 8, 7200, 7200, product.StatusActive},
	{"MLM-1005", "Nespresso Essenza Mini Coffee Maker", "Home", "https://picsum.photos/id/5/300/300", 20, 1800, 1800, product.StatusActive},
}

// linkedItems stand in for the seller's listings when the marketplace runs in demo mode.
// MLM-2003 arrives with a stale discounted price that the first reconciliation resets.
var linkedItems = []seedItem{
	{"MLM-2001", `Apple MacBook Air M2 13.6" Space Gray`, "Computers", "https://images.unsplash.com/photo-1517336714731-489689fd1ca4?auto=format&fit=crop&w=300&q=80", 15, 22999, 22999, product.StatusActive},
	{"MLM-2002", `LG UltraGear 27" Gaming Monitor`, "Computers", "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&w=300&q=80", 8, 5499, 5499, product.StatusPaused},
	{"MLM-2003", "PlayStation 5 Slim Digital Edition", "Consoles", "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?auto=format&fit=crop&w=300&q=80", 22, 9499, 8999, product.StatusActive},
	{"MLM-2004", "DJI Mini 3 Pro Drone with RC", "Cameras", "https://images.unsplash.com/photo-1579829366248-204fe8413f31?auto=format&fit=crop&w=300&q=80", 3, 18500, 18500, product.StatusActive},
}

// DemoCatalog is the catalog shown before any marketplace account is linked.
func DemoCatalog() product.Catalog {
	return buildCatalog(demoItems)
}

func LinkedDemoCatalog() product.Catalog {
	return buildCatalog(linkedItems)
}

func buildCatalog(items []seedItem) product.Catalog {
	products := make([]product.Product, 0, len(items))
	for _, it := range items {
		products = append(products, product.ReconstructProduct(
			it.id,
			product.Attributes{Title: it.title, Category: it.category, Image: it.image, Permalink: "#", Stock: it.stock},
			decimal.NewFromInt(it.original),
			decimal.NewFromInt(it.current),
			it.status,
		))
	}
	// Seed ids are unique.
	catalog, _ := product.NewCatalog(products...)
	return catalog
}
