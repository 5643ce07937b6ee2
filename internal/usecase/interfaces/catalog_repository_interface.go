package interfaces

import (
	"context"

	"assignment_ledger/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogRepository resolves benefit item ids to catalog definitions.
type ICatalogRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
}
