package deals

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Deal is a single link shown under a retailer
type Deal struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate checks that the deal has a name and an absolute URL
func (d Deal) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.URL, validation.Required, is.RequestURL),
	)
}

// Catalog is the ordered list of deals for one retailer
type Catalog struct {
	Title string `json:"title"`
	Deals []Deal `json:"deals"`
}

// Validate checks the title and every deal in the catalog
func (c Catalog) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Deals),
	)
}

// Catalogs is the ordered set of retailer blocks in a message
type Catalogs []Catalog

// Validate requires at least one catalog and validates each of them
func (cs Catalogs) Validate() error {
	return validation.Validate([]Catalog(cs), validation.Required)
}

// Len returns the total number of deals across all catalogs
func (cs Catalogs) Len() int {
	n := 0
	for _, c := range cs {
		n += len(c.Deals)
	}
	return n
}

// Default returns the built-in Amazon, eBay and Walmart catalogs
func Default() Catalogs {
	return Catalogs{
		{
			Title: "🟧 Amazon",
			Deals: []Deal{
				{Name: "Amazon Deals (General)", URL: "https://www.amazon.com/deals"},
				{Name: "Amazon Gold Box", URL: "https://www.amazon.com/gp/goldbox"},
				{Name: "Amazon Best Sellers", URL: "https://www.amazon.com/Best-Sellers/zgbs"},
				{Name: "Amazon Electronics Deals", URL: "https://www.amazon.com/deals?departments=electronics"},
			},
		},
		{
			Title: "🟦 eBay",
			Deals: []Deal{
				{Name: "eBay Deals", URL: "https://www.ebay.com/deals"},
				{Name: "eBay Tech Deals", URL: "https://www.ebay.com/deals/tech"},
				{Name: "eBay Refurbished", URL: "https://www.ebay.com/e/_electronics/ebay-refurbished"},
				{Name: "eBay Daily Deals Search", URL: "https://www.ebay.com/sch/i.html?_nkw=deal&_sop=12"},
			},
		},
		{
			Title: "🟩 Walmart",
			Deals: []Deal{
				{Name: "Walmart Deals", URL: "https://www.walmart.com/deals"},
				{Name: "Walmart Clearance", URL: "https://www.walmart.com/browse/0?facet=fulfillment_method_in_store%3AIn-store%7Cretailer_type%3AWalmart%7Cspecial_offers%3AClearance"},
				{Name: "Walmart Electronics Deals", URL: "https://www.walmart.com/deals/electronics"},
				{Name: "Walmart Home Deals", URL: "https://www.walmart.com/deals/home"},
			},
		},
	}
}
