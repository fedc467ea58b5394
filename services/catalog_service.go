package services

import (
	"shopkart/models"
	"shopkart/repositories"
)

type CatalogService struct {
	productRepo *repositories.ProductRepository
}

func NewCatalogService(store *repositories.FileStore) *CatalogService {
	return &CatalogService{
		productRepo: repositories.NewProductRepository(store),
	}
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}
