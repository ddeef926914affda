package repository

import (
	"context"

	"github.com/dmaselli/roicanvas/internal/domain"
)

// InitiativeRepo persists the captured initiative workbook. The analysis
// pipeline itself never touches storage; repositories only feed it.
type InitiativeRepo interface {
	Create(ctx context.Context, in *domain.Initiative) error
	GetByID(ctx context.Context, id string) (*domain.Initiative, error)
	GetByName(ctx context.Context, name string) (*domain.Initiative, error)
	List(ctx context.Context) ([]*domain.Initiative, error)
	Update(ctx context.Context, in *domain.Initiative) error
	Delete(ctx context.Context, id string) error
}
