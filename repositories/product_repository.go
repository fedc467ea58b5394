package repositories

import "shopkart/models"

// ProductRepository reads the externally seeded catalog. There is no
// mutation path for products.
type ProductRepository struct {
	store *FileStore
}

func NewProductRepository(store *FileStore) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) GetAll() ([]models.Product, error) {
	unlock := r.store.lock(productsFile)
	defer unlock()

	products := []models.Product{}
	if err := r.store.read(productsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}
