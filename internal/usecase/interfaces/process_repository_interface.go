package interfaces

import (
	"context"

	"controlimport/internal/domain/entities"
)

// IProcessRepository abstracts DynamoDB persistence for Process.
//
// The service must be able to:
//   - create a process after sequence allocation (conflict-safe on id)
//   - load/save full process documents (derived fields are recomputed by the
//     usecase before every save)
//   - check whether an import-code sequence is already taken
type IProcessRepository interface {
	Create(ctx context.Context, p entities.Process) (entities.Process, error)
	Save(ctx context.Context, p entities.Process) (entities.Process, error)
	GetByID(ctx context.Context, id string) (entities.Process, error)
	List(ctx context.Context) ([]entities.Process, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsBySequence(ctx context.Context, seq int) (bool, error)
}
