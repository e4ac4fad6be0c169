package service

import (
	"context"
	"strconv"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/repository"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
)

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	publisher EventPublisher
}

func CreateProductService(repo repository.ProductRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, publisher: publisher}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	product, err := productFromRequest(req)
	if err != nil {
		return
	}

	product.ID, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	resp = toProductResponse(product)
	publishEvent(ctx, s.publisher, EventProductAdded, strconv.FormatInt(product.ID, 10), resp)

	return resp, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	products, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		records = append(records, toProductResponse(product))
	}

	totalCount := int64(len(products))
	if filter.Paginated() {
		totalCount, err = s.repo.CountProducts(ctx)
		if err != nil {
			return
		}
	}

	resp.Records = records
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id int64) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	product, err := productFromRequest(req)
	if err != nil {
		return
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return
	}

	resp = toProductResponse(product)
	publishEvent(ctx, s.publisher, EventProductUpdated, strconv.FormatInt(product.ID, 10), resp)

	return resp, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	err = s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	publishEvent(ctx, s.publisher, EventProductDeleted, strconv.FormatInt(id, 10), dto.ProductResponse{ID: id})

	return nil
}

func productFromRequest(req dto.ProductRequest) (domain.Product, error) {
	if req.Price == nil {
		return domain.Product{}, errs.ErrInvalidProduct
	}

	return domain.NewProduct(req.ID, req.Name, req.Image, *req.Price)
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Image: product.Image,
		Price: product.Price,
	}
}
