package catalog

import (
	"context"

	"brewflow/models"
)

// Provider fetches the current catalog from the external collaborator.
// Fetches may fail transiently; callers treat failures as recoverable.
type Provider interface {
	FetchCatalog(ctx context.Context) ([]models.CatalogItem, error)
}
