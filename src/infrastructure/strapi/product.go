package strapi

import (
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const (
	productQuery = "products?populate[parent]=true&populate[children]=true&populate[product_set]=true&populate[service_area]=true&populate[team]=true"

	// productFields trims listings down to the slack channel and
	// identity fields most consumers need.
	productFields = "&fields[0]=slack_channel_id&fields[1]=slack_channel_name&fields[2]=p_id&fields[3]=name"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) repository.ProductRepository {
	return productRepository{store}
}

func (self productRepository) GetAll() ([]domain.Product, error) {
	return fetchAll[domain.Product](self.store, productQuery+productFields+self.store.pageSizeParam()), nil
}

func (self productRepository) GetAllDetailed() ([]domain.Product, error) {
	return fetchAll[domain.Product](self.store, productQuery+self.store.pageSizeParam()), nil
}

func (self productRepository) GetByPId(pId string) (*domain.Product, error) {
	products := fetchAll[domain.Product](self.store, Filtered(productQuery+productFields+self.store.pageSizeParam(), "p_id", pId))
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}
