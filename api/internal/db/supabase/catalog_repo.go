package supabase

import (
	"context"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"muebleria/api/internal/core/domain"
)

const (
	productsTable   = "products"
	categoriesTable = "categories"
)

// CatalogRepo serves the public read paths. Restricted handle only;
// this service never writes products or categories.
type CatalogRepo struct {
	handles *Handles
}

func NewCatalogRepo(handles *Handles) *CatalogRepo {
	return &CatalogRepo{handles: handles}
}

func (r *CatalogRepo) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	_, err = client.From(productsTable).
		Select("*", "", false).
		Eq("is_available", "true").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteToWithContext(ctx, &products)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return products, nil
}

func (r *CatalogRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	_, err = client.From(productsTable).
		Select("*", "", false).
		Eq("id", id).
		Single().
		ExecuteToWithContext(ctx, &product)
	if err != nil {
		// PGRST116: zero rows where exactly one was requested
		if strings.Contains(err.Error(), "PGRST116") {
			return nil, domain.ErrNotFound
		}
		return nil, mapStoreError(err)
	}
	return &product, nil
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return nil, err
	}
	var categories []domain.Category
	_, err = client.From(categoriesTable).
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		ExecuteToWithContext(ctx, &categories)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return categories, nil
}

func (r *CatalogRepo) CountProducts(ctx context.Context) (int64, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return 0, err
	}
	_, count, err := client.From(productsTable).
		Select("id", "exact", true).
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}
