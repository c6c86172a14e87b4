package port

import (
	"context"
	"retoque/internal/core/domain"
)

type Editor interface {
	// EditImage sends the inline image payload and instruction to the
	// generation API and returns the response content parts in API order.
	// Returns domain.ErrNoResponse when the API yields no candidates.
	EditImage(ctx context.Context, request domain.EditRequest) ([]domain.ResultPart, error)
}
