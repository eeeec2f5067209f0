package services

import (
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"

	// Register the decoders ValidateImage relies on.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"restaurant/internal/apperrors"
	"restaurant/internal/models"
	"restaurant/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	httpClient *http.Client
}

// NewProductService creates a new ProductService. The HTTP client is used to
// fetch product image URLs during creation; passing nil selects a client
// without a timeout, so a stalled image host stalls the creation request.
func NewProductService(repo repositories.ProductRepository, httpClient *http.Client) *ProductService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ProductService{
		repo:       repo,
		httpClient: httpClient,
	}
}

// CreateProduct creates a new product. It fails with an AlreadyExists error
// when a product with the same name exists, and with an image error when the
// image URL cannot be fetched and decoded. The name-uniqueness check is
// check-then-write; nothing guards it against a concurrent create of the
// same name.
func (s *ProductService) CreateProduct(product *models.Product) error {
	existing, err := s.repo.GetByName(product.Name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check for existing product: %w", err)
	}
	if existing != nil {
		log.Printf("Product %s already exists, rejecting creation", product.Name)
		return apperrors.NewAlreadyExists(product.Name)
	}

	ok, err := s.ValidateImage(product.Image)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("Image URL for product %s did not decode as an image", product.Name)
		return apperrors.NewImageUnreachable()
	}

	return s.repo.Create(product)
}

// GetAllProducts retrieves all products. An empty store yields an empty
// slice, not an error.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProductByName retrieves a single product by its exact name.
func (s *ProductService) GetProductByName(name string) (*models.Product, error) {
	product, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewProductNotFound(name)
		}
		return nil, fmt.Errorf("failed to get product by name %s: %w", name, err)
	}
	return product, nil
}

// ValidateImage fetches url and reports whether the body decodes as an image
// (GIF, JPEG or PNG). A malformed or unreachable URL yields an ImageFetchError;
// a URL that resolves but does not decode yields (false, nil).
func (s *ProductService) ValidateImage(url string) (bool, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		log.Printf("Failed to fetch image URL %s: %v", url, err)
		return false, apperrors.NewImageFetchError()
	}
	defer resp.Body.Close()

	if _, _, err := image.Decode(resp.Body); err != nil {
		return false, nil
	}
	return true, nil
}
