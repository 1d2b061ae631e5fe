// Package catalog holds the storefront's product list.  The menu is small
// and changes by deploy, not by request, so it lives in code rather than in
// a table; orders snapshot the item name and price at checkout, so catalog
// edits never rewrite history.
package catalog

// Product is one item on the menu.
type Product struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

var products = []Product{
	{ID: 1, Name: "Bolo Coração", Price: 150, Description: "Bolo em formato de coração, perfeito para demonstrar amor e carinho", Category: "Especiais"},
	{ID: 2, Name: "Bolo Retangular 27x18cm", Price: 170, Description: "Bolo retangular ideal para festas e comemorações em família", Category: "Tradicionais"},
	{ID: 3, Name: "Bolo Quadrado 20x20cm", Price: 200, Description: "Bolo quadrado elegante, perfeito para ocasiões sofisticadas", Category: "Premium"},
	{ID: 4, Name: "Bolo de Chocolate", Price: 120, Description: "Delicioso bolo de chocolate com cobertura cremosa", Category: "Tradicionais"},
	{ID: 5, Name: "Bolo de Morango", Price: 140, Description: "Bolo saboroso com morangos frescos e chantilly", Category: "Especiais"},
	{ID: 6, Name: "Bolo de Aniversário", Price: 180, Description: "Bolo especial para aniversários com decoração personalizada", Category: "Premium"},
}

// Products returns the full menu.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given id, if any.
func Find(id uint64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
