package services

import (
	"context"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// ProductCatalog resolves SKU master records. Lookups never fail; a miss is
// reported through the boolean.
type ProductCatalog interface {
	GetBySKU(skuID string) (models.ProductRecord, bool)
	GetByBarcode(barcode string) (models.ProductRecord, bool)
}

// RowSource provides a tabular snapshot (header row first) from a remote
// spreadsheet or any other provider of master data.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}
