package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmaselli/roicanvas/internal/db"
	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/importer"
	"github.com/dmaselli/roicanvas/internal/repository"
	"github.com/google/uuid"
)

type initiativeService struct {
	initiatives repository.InitiativeRepo
	uow         db.UnitOfWork
}

func NewInitiativeService(initiatives repository.InitiativeRepo, uow db.UnitOfWork) InitiativeService {
	return &initiativeService{initiatives: initiatives, uow: uow}
}

func (s *initiativeService) Create(ctx context.Context, in *domain.Initiative) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	if err := in.Validate(); err != nil {
		return err
	}
	return s.initiatives.Create(ctx, in)
}

func (s *initiativeService) Resolve(ctx context.Context, ref string) (*domain.Initiative, error) {
	if ref == "" {
		return nil, fmt.Errorf("initiative reference is required")
	}

	if in, err := s.initiatives.GetByID(ctx, ref); err == nil {
		return in, nil
	}
	if in, err := s.initiatives.GetByName(ctx, ref); err == nil {
		return in, nil
	}

	list, err := s.initiatives.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Initiative
	for _, in := range list {
		if strings.HasPrefix(in.ID, ref) {
			matches = append(matches, in)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("initiative %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("initiative reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func (s *initiativeService) List(ctx context.Context) ([]*domain.Initiative, error) {
	return s.initiatives.List(ctx)
}

func (s *initiativeService) Update(ctx context.Context, in *domain.Initiative) error {
	if err := in.Validate(); err != nil {
		return err
	}
	in.UpdatedAt = time.Now().UTC()
	return s.initiatives.Update(ctx, in)
}

func (s *initiativeService) Delete(ctx context.Context, id string) error {
	return s.initiatives.Delete(ctx, id)
}

func (s *initiativeService) ImportFile(ctx context.Context, path string) (int, []error, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return 0, nil, err
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return 0, errs, fmt.Errorf("import file has %d validation error(s)", len(errs))
	}

	// The whole batch lands in one transaction: a conflict with an already
	// captured record (e.g. a duplicate name) rolls back every insert.
	converted := importer.Convert(schema)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteInitiativeRepo(tx)
		for i := range converted {
			if err := txRepo.Create(ctx, &converted[i]); err != nil {
				return fmt.Errorf("importing %q: %w", converted[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return len(converted), nil, nil
}
