package services

import (
	"context"
	"fmt"

	"atelier-catalog/internal/printful"
	"atelier-catalog/internal/repository"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
)

// ProductCreator is the subset of the Printful client the product flow uses.
type ProductCreator interface {
	CreateSyncProduct(ctx context.Context, title, imageURL string, retailPrice float64, productType string) (*printful.SyncProduct, error)
}

// ProductService pushes artworks into the print-on-demand store.
type ProductService struct {
	repo          repository.ArtworkRepository
	client        ProductCreator
	publicBaseURL string
}

func NewProductService(repo repository.ArtworkRepository, client ProductCreator, publicBaseURL string) *ProductService {
	return &ProductService{repo: repo, client: client, publicBaseURL: publicBaseURL}
}

// CreateProducts creates one store product per requested type. The artwork's
// own price wins over the per-type suggested retail price.
func (s *ProductService) CreateProducts(ctx context.Context, in validation.ProductInput) (httpdto.CreateProductsResponse, error) {
	a, err := s.repo.GetByID(ctx, in.ArtworkID)
	if err != nil {
		return httpdto.CreateProductsResponse{}, err
	}

	imageURL := s.publicBaseURL + a.ImagePath

	created := make([]httpdto.ProductInfo, 0, len(in.ProductTypes))
	for _, productType := range in.ProductTypes {
		suggested := printful.SuggestedPrices[productType]
		price := suggested
		if a.Price != nil {
			price = *a.Price
		}

		product, err := s.client.CreateSyncProduct(ctx, a.Title, imageURL, price, productType)
		if err != nil {
			return httpdto.CreateProductsResponse{}, err
		}

		created = append(created, httpdto.ProductInfo{
			Type:            productType,
			Name:            product.Name,
			BasePrice:       price,
			SuggestedRetail: suggested,
		})
	}

	return httpdto.CreateProductsResponse{
		Products: created,
		Message:  fmt.Sprintf("created %d product(s) for %q", len(created), a.Title),
	}, nil
}
