package interfaces

import (
	"context"

	"notaria_backoffice/internal/domain/entities"
)

// IEscrituraRepository abstracts DynamoDB persistence for the Escritura
// aggregate. Saves are whole-aggregate writes; the store provides the
// isolation that serializes concurrent writers.

type IEscrituraRepository interface {
	Create(ctx context.Context, e entities.Escritura) (entities.Escritura, error)
	GetByID(ctx context.Context, id string) (entities.Escritura, error)
	List(ctx context.Context, filter entities.EscrituraFilter) ([]entities.Escritura, error)
	Update(ctx context.Context, e entities.Escritura) (entities.Escritura, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	ExistsByFolio(ctx context.Context, folioInterno string) (bool, error)
}
