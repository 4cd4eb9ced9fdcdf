package domain

type Money struct {
	Currency string
	Amount   int64
}

// ColorVariant is a color option with the sizes available in that color.
type ColorVariant struct {
	Name  string
	Hex   string
	Sizes []string
}

type Product struct {
	ID          string
	Name        string
	Category    string
	Subcategory string
	Brand       string
	Description string
	Price       Money
	// OldPrice is the compare-at price, when the product is on offer.
	OldPrice *Money
	Colors   []ColorVariant
	// Sizes is the flat size list for products without color variants.
	Sizes []string
	Tags  []string
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
