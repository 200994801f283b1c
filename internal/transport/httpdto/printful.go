package httpdto

type CreateProductsRequest struct {
	ArtworkID    string   `json:"artworkId"`
	ProductTypes []string `json:"productTypes"`
}

type ProductInfo struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	BasePrice       float64 `json:"basePrice"`
	SuggestedRetail float64 `json:"suggestedRetail"`
}

type CreateProductsResponse struct {
	Products []ProductInfo `json:"products"`
	Message  string        `json:"message"`
}
