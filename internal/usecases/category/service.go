package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository"
	"github.com/vfg2006/store-revenue-api/internal/domain"
)

var (
	// ErrMissingStoreID indica requisição sem identificador de loja.
	ErrMissingStoreID = errors.New("identificador da loja é obrigatório")
	// ErrMissingName indica categoria sem nome.
	ErrMissingName = errors.New("o nome da categoria é obrigatório")
	// ErrCategoryNotFound indica que a categoria não existe ou pertence a
	// outra loja.
	ErrCategoryNotFound = errors.New("categoria não encontrada")
)

type Categorizer interface {
	List(ctx context.Context, storeID string, filter *domain.CategoryFilter) ([]*domain.Category, error)
	Get(ctx context.Context, storeID, id string) (*domain.Category, error)
	Create(ctx context.Context, storeID string, request *domain.CategoryRequest) (*domain.Category, error)
	Update(ctx context.Context, storeID, id string, request *domain.CategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, storeID, id string) error
}

type Service struct {
	categoryRepo repository.CategoryRepository
}

func NewService(categoryRepo repository.CategoryRepository) Categorizer {
	return &Service{
		categoryRepo: categoryRepo,
	}
}

func (s *Service) List(ctx context.Context, storeID string, filter *domain.CategoryFilter) ([]*domain.Category, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	return s.categoryRepo.ListByStore(ctx, storeID, filter)
}

// Get carrega a categoria e confere a loja dona; categoria de outra loja é
// tratada como inexistente.
func (s *Service) Get(ctx context.Context, storeID, id string) (*domain.Category, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar categoria")
	}

	if category == nil || category.StoreID != storeID {
		return nil, ErrCategoryNotFound
	}

	return category, nil
}

func (s *Service) Create(ctx context.Context, storeID string, request *domain.CategoryRequest) (*domain.Category, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	if request == nil || request.Name == "" {
		return nil, ErrMissingName
	}

	category := &domain.Category{
		ID:      uuid.New().String(),
		StoreID: storeID,
		Name:    request.Name,
		Gender:  request.Gender,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "erro ao criar categoria")
	}

	return category, nil
}

func (s *Service) Update(ctx context.Context, storeID, id string, request *domain.CategoryRequest) (*domain.Category, error) {
	if request == nil || request.Name == "" {
		return nil, ErrMissingName
	}

	category, err := s.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	category.Name = request.Name
	category.Gender = request.Gender

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar categoria")
	}

	return category, nil
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	if _, err := s.Get(ctx, storeID, id); err != nil {
		return err
	}

	return s.categoryRepo.Delete(ctx, id)
}
