package interfaces

import (
	"context"

	"notaria_backoffice/internal/domain/entities"
)

// DefaultTaxConfigKey is the fallback settings row used when a document type
// has no dedicated tax configuration.
const DefaultTaxConfigKey = "default"

// ITaxConfigRepository abstracts persisted tax settings. Get returns one
// consistent snapshot; found=false means no row exists for that key.

type ITaxConfigRepository interface {
	Get(ctx context.Context, key string) (cfg entities.TaxConfig, found bool, err error)
	Put(ctx context.Context, key string, cfg entities.TaxConfig) error
}
