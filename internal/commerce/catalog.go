package commerce

import (
	"context"
	"strings"

	dErrors "storefront/pkg/domain-errors"
)

const searchQuery = `
query Search($input: SearchInput!) {
  search(input: $input) {
    totalItems
    items {
      productId
      productName
      slug
      currencyCode
      productAsset { id preview }
      priceWithTax {
        ... on SinglePrice { value }
        ... on PriceRange { min max }
      }
    }
    facetValues {
      count
      facetValue { id name code facet { id name code } }
    }
  }
}`

// Search runs a grouped-by-product catalog search.
func (c *Client) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	input := map[string]any{
		"groupByProduct": true,
		"skip":           in.Skip,
		"take":           in.Take,
	}
	if term := strings.TrimSpace(in.Term); term != "" {
		input["term"] = term
	}
	if in.CollectionSlug != "" {
		input["collectionSlug"] = in.CollectionSlug
	}
	if len(in.FacetValueIDs) > 0 {
		input["facetValueFilters"] = []map[string]any{{"or": in.FacetValueIDs}}
	}
	switch in.Sort {
	case SortNameAsc:
		input["sort"] = map[string]string{"name": "ASC"}
	case SortNameDesc:
		input["sort"] = map[string]string{"name": "DESC"}
	case SortPriceAsc:
		input["sort"] = map[string]string{"price": "ASC"}
	case SortPriceDesc:
		input["sort"] = map[string]string{"price": "DESC"}
	}

	var out struct {
		Search SearchResult `json:"search"`
	}
	if err := c.Do(ctx, "Search", searchQuery, map[string]any{"input": input}, &out); err != nil {
		return nil, err
	}
	return &out.Search, nil
}

const productQuery = `
query Product($slug: String!) {
  product(slug: $slug) {
    id
    name
    slug
    description
    featuredAsset { ...Asset }
    assets { ...Asset }
    variants { id name sku price priceWithTax currencyCode stockLevel product { id name slug } }
    collections { id name slug breadcrumbs { id name slug } }
    facetValues { id name code facet { id name code } }
  }
}` + assetFragment

// Product loads a product by slug. A missing product is CodeNotFound.
func (c *Client) Product(ctx context.Context, slug string) (*Product, error) {
	var out struct {
		Product *Product `json:"product"`
	}
	if err := c.Do(ctx, "Product", productQuery, map[string]any{"slug": slug}, &out); err != nil {
		return nil, err
	}
	if out.Product == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "product not found")
	}
	return out.Product, nil
}

const collectionsQuery = `
query Collections {
  collections(options: { topLevelOnly: false }) {
    items {
      id
      name
      slug
      parent { id name slug }
      featuredAsset { ...Asset }
    }
  }
}` + assetFragment

// Collections lists every collection in the channel.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	var out struct {
		Collections struct {
			Items []Collection `json:"items"`
		} `json:"collections"`
	}
	if err := c.Do(ctx, "Collections", collectionsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Collections.Items, nil
}

const collectionQuery = `
query Collection($slug: String!) {
  collection(slug: $slug) {
    id
    name
    slug
    description
    featuredAsset { ...Asset }
    breadcrumbs { id name slug }
  }
}` + assetFragment

// Collection loads one collection by slug.
func (c *Client) Collection(ctx context.Context, slug string) (*Collection, error) {
	var out struct {
		Collection *Collection `json:"collection"`
	}
	if err := c.Do(ctx, "Collection", collectionQuery, map[string]any{"slug": slug}, &out); err != nil {
		return nil, err
	}
	if out.Collection == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "collection not found")
	}
	return out.Collection, nil
}
