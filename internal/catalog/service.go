package catalog

import (
	"context"
	"errors"

	"github.com/silvergold-id/backend-silvergold/internal/common"
	"github.com/silvergold-id/backend-silvergold/internal/repo"
)

// featuredPerMetal caps how many products of each metal the landing page shows.
const featuredPerMetal = 2

// ProductStore is the slice of the data store the catalogue needs.
type ProductStore interface {
	List(ctx context.Context) ([]repo.Product, error)
	WarehouseStock(ctx context.Context, id string) (map[string]int, error)
}

// KnowledgeStore reads knowledge base articles.
type KnowledgeStore interface {
	List(ctx context.Context) ([]repo.KnowledgeArticle, error)
}

// Service proxies catalogue reads to the data store.
type Service struct {
	Products  ProductStore
	Knowledge KnowledgeStore
}

// ListProducts returns every product in the fixed projection.
func (s *Service) ListProducts(ctx context.Context) ([]repo.Product, error) {
	products, err := s.Products.List(ctx)
	if err != nil {
		return nil, common.NewDependencyError("failed to fetch products", err)
	}
	if products == nil {
		products = []repo.Product{}
	}
	return products, nil
}

// ListFeatured returns at most two gold and two silver products in store order.
// The store return order is the selection criterion; nothing is sorted or padded.
func (s *Service) ListFeatured(ctx context.Context) ([]repo.Product, error) {
	all, err := s.Products.List(ctx)
	if err != nil {
		return nil, common.NewDependencyError("failed to fetch products", err)
	}
	gold := make([]repo.Product, 0, featuredPerMetal)
	silver := make([]repo.Product, 0, featuredPerMetal)
	for _, p := range all {
		switch p.Metal {
		case "Gold":
			if len(gold) < featuredPerMetal {
				gold = append(gold, p)
			}
		case "Silver":
			if len(silver) < featuredPerMetal {
				silver = append(silver, p)
			}
		}
	}
	return append(gold, silver...), nil
}

// WarehouseStock returns the stock map for one product id.
func (s *Service) WarehouseStock(ctx context.Context, id string) (map[string]int, error) {
	stock, err := s.Products.WarehouseStock(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, common.NewNotFoundError("product not found")
		}
		return nil, common.NewDependencyError("failed to fetch warehouse stock", err)
	}
	return stock, nil
}

// ListKnowledge returns all knowledge base articles.
func (s *Service) ListKnowledge(ctx context.Context) ([]repo.KnowledgeArticle, error) {
	if s.Knowledge == nil {
		return []repo.KnowledgeArticle{}, nil
	}
	articles, err := s.Knowledge.List(ctx)
	if err != nil {
		return nil, common.NewDependencyError("failed to fetch knowledge articles", err)
	}
	if articles == nil {
		articles = []repo.KnowledgeArticle{}
	}
	return articles, nil
}
