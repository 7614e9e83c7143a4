package product

// Catalog is an immutable, ordered snapshot of products. Every mutator returns a new Catalog.
type Catalog struct {
	items []Product
	index map[string]int
}

func NewCatalog(items ...Product) (Catalog, error) {
	index := make(map[string]int, len(items))
	for i, p := range items {
		if _, dup := index[p.ID()]; dup {
			return Catalog{}, ErrDuplicateID
		}
		index[p.ID()] = i
	}
	copied := make([]Product, len(items))
	copy(copied, items)
	return Catalog{items: copied, index: index}, nil
}

func (c Catalog) Len() int {
	return len(c.items)
}

// Products returns a copy of the catalog in ingestion order.
func (c Catalog) Products() []Product {
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c Catalog) Find(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.items[i], true
}

// TitleOf resolves a product title; ok is false for dangling references.
func (c Catalog) TitleOf(id string) (string, bool) {
	p, ok := c.Find(id)
	if !ok {
		return "", false
	}
	return p.Title(), true
}

// Map returns a new catalog with fn applied to every product. Identity must not change.
func (c Catalog) Map(fn func(Product) Product) Catalog {
	items := make([]Product, len(c.items))
	for i, p := range c.items {
		items[i] = fn(p)
	}
	return Catalog{items: items, index: c.index}
}

// Replace swaps a single product by id.
func (c Catalog) Replace(p Product) (Catalog, error) {
	if _, ok := c.index[p.ID()]; !ok {
		return c, ErrProductMissing
	}
	return c.Map(func(existing Product) Product {
		if existing.ID() == p.ID() {
			return p
		}
		return existing
	}), nil
}

func (c Catalog) Equal(o Catalog) bool {
	if len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if !c.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}
