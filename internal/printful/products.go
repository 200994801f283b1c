package printful

import "sort"

// Product is one print-on-demand product the catalog can be pushed to.
type Product struct {
	ID      int
	Name    string
	Variant int
}

// Common Printful product ids for art.
var Products = map[string]Product{
	"poster_12x18":  {ID: 1, Name: "Enhanced Matte Poster 12×18", Variant: 4783},
	"poster_18x24":  {ID: 1, Name: "Enhanced Matte Poster 18×24", Variant: 4784},
	"poster_24x36":  {ID: 1, Name: "Enhanced Matte Poster 24×36", Variant: 4785},
	"canvas_12x12":  {ID: 2, Name: "Canvas 12×12", Variant: 2103},
	"canvas_16x16":  {ID: 2, Name: "Canvas 16×16", Variant: 2104},
	"canvas_18x24":  {ID: 2, Name: "Canvas 18×24", Variant: 2107},
	"framed_12x12":  {ID: 3, Name: "Framed Poster 12×12", Variant: 10782},
	"framed_12x18":  {ID: 3, Name: "Framed Poster 12×18", Variant: 10783},
	"tshirt_unisex": {ID: 71, Name: "Unisex Staple T-Shirt", Variant: 4012},
	"hoodie_unisex": {ID: 380, Name: "Unisex Premium Hoodie", Variant: 11193},
	"mug_11oz":      {ID: 19, Name: "White Glossy Mug 11oz", Variant: 1320},
	"mug_15oz":      {ID: 19, Name: "White Glossy Mug 15oz", Variant: 4830},
	"tote_bag":      {ID: 83, Name: "Tote Bag", Variant: 4533},
	"phone_case":    {ID: 239, Name: "iPhone Case", Variant: 8070},
}

// SuggestedPrices are retail prices at roughly 2.5x Printful base cost.
var SuggestedPrices = map[string]float64{
	"poster_12x18":  24.99,
	"poster_18x24":  34.99,
	"poster_24x36":  49.99,
	"canvas_12x12":  59.99,
	"canvas_16x16":  79.99,
	"canvas_18x24":  99.99,
	"framed_12x12":  49.99,
	"framed_12x18":  59.99,
	"tshirt_unisex": 29.99,
	"hoodie_unisex": 54.99,
	"mug_11oz":      14.99,
	"mug_15oz":      17.99,
	"tote_bag":      19.99,
	"phone_case":    24.99,
}

// AvailableProductTypes lists the known product keys in stable order.
func AvailableProductTypes() []string {
	types := make([]string, 0, len(Products))
	for key := range Products {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}
