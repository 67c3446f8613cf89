package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
)

// InventoryService orchestrates sweet persistence. Quantity invariants are
// enforced inside the repository's atomic statements; this layer adds
// defaulting and logging.
type InventoryService struct {
	Sweets repo.SweetRepository
	Logger *logrus.Logger
}

func NewInventoryService(sweets repo.SweetRepository, logger *logrus.Logger) *InventoryService {
	return &InventoryService{Sweets: sweets, Logger: logger}
}

func (s *InventoryService) List(ctx context.Context) ([]entity.Sweet, error) {
	return s.Sweets.List(ctx)
}

func (s *InventoryService) Search(ctx context.Context, f repo.SweetFilter) ([]entity.Sweet, error) {
	return s.Sweets.Search(ctx, f)
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*entity.Sweet, error) {
	return s.Sweets.Get(ctx, id)
}

// Create persists a new sweet, applying the default description when the
// caller did not provide one.
func (s *InventoryService) Create(ctx context.Context, sweet *entity.Sweet) error {
	if sweet.Description == "" {
		sweet.Description = entity.DefaultSweetDescription
	}
	if err := s.Sweets.Create(ctx, sweet); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"id": sweet.ID, "name": sweet.Name}).Info("sweet created")
	return nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, upd repo.SweetUpdate) (*entity.Sweet, error) {
	return s.Sweets.Update(ctx, id, upd)
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.Sweets.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("id", id).Info("sweet deleted")
	return nil
}

func (s *InventoryService) Purchase(ctx context.Context, id int64) (*entity.Sweet, error) {
	sweet, err := s.Sweets.Purchase(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"id": id, "remaining": sweet.Quantity}).Info("sweet purchased")
	return sweet, nil
}

func (s *InventoryService) Restock(ctx context.Context, id int64, amount int) (*entity.Sweet, error) {
	sweet, err := s.Sweets.Restock(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"id": id, "amount": amount, "quantity": sweet.Quantity}).Info("sweet restocked")
	return sweet, nil
}
