package category

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/store-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestService_Get(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		setup    func(repo *repomocks.MockCategoryRepository)
		validate func(t *testing.T, category *domain.Category, err error)
	}{
		{
			name:    "Sucesso",
			storeID: "store-1",
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), "cat-1").
					Return(&domain.Category{ID: "cat-1", StoreID: "store-1", Name: "Vestidos"}, nil)
			},
			validate: func(t *testing.T, category *domain.Category, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Vestidos", category.Name)
			},
		},
		{
			name:    "Categoria de outra loja é tratada como inexistente",
			storeID: "store-2",
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), "cat-1").
					Return(&domain.Category{ID: "cat-1", StoreID: "store-1", Name: "Vestidos"}, nil)
			},
			validate: func(t *testing.T, category *domain.Category, err error) {
				assert.True(t, errors.Is(err, ErrCategoryNotFound))
				assert.Nil(t, category)
			},
		},
		{
			name:    "Categoria inexistente",
			storeID: "store-1",
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), "cat-1").
					Return(nil, nil)
			},
			validate: func(t *testing.T, category *domain.Category, err error) {
				assert.True(t, errors.Is(err, ErrCategoryNotFound))
				assert.Nil(t, category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockCategoryRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			category, err := service.Get(context.Background(), tt.storeID, "cat-1")
			tt.validate(t, category, err)
		})
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		request  *domain.CategoryRequest
		setup    func(repo *repomocks.MockCategoryRepository)
		validate func(t *testing.T, category *domain.Category, err error)
	}{
		{
			name:    "Sucesso - identificador gerado e loja atribuída",
			storeID: "store-1",
			request: &domain.CategoryRequest{Name: "Calçados", Gender: strPtr("MALE")},
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, category *domain.Category) error {
						assert.NotEmpty(t, category.ID)
						assert.Equal(t, "store-1", category.StoreID)
						return nil
					})
			},
			validate: func(t *testing.T, category *domain.Category, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Calçados", category.Name)
				require.NotNil(t, category.Gender)
				assert.Equal(t, "MALE", *category.Gender)
			},
		},
		{
			name:     "Nome vazio",
			storeID:  "store-1",
			request:  &domain.CategoryRequest{},
			setup:    func(*repomocks.MockCategoryRepository) {},
			validate: func(t *testing.T, category *domain.Category, err error) {
				assert.True(t, errors.Is(err, ErrMissingName))
				assert.Nil(t, category)
			},
		},
		{
			name:     "Loja vazia",
			storeID:  "",
			request:  &domain.CategoryRequest{Name: "Calçados"},
			setup:    func(*repomocks.MockCategoryRepository) {},
			validate: func(t *testing.T, category *domain.Category, err error) {
				assert.True(t, errors.Is(err, ErrMissingStoreID))
				assert.Nil(t, category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockCategoryRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			category, err := service.Create(context.Background(), tt.storeID, tt.request)
			tt.validate(t, category, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockCategoryRepository(ctrl)
	repo.EXPECT().
		GetByID(gomock.Any(), "cat-1").
		Return(&domain.Category{ID: "cat-1", StoreID: "store-1", Name: "Vestidos", Gender: strPtr("FEMALE")}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, category *domain.Category) error {
			assert.Equal(t, "Vestidos longos", category.Name)
			assert.Nil(t, category.Gender)
			return nil
		})

	service := NewService(repo)
	category, err := service.Update(context.Background(), "store-1", "cat-1", &domain.CategoryRequest{Name: "Vestidos longos"})
	require.NoError(t, err)
	assert.Equal(t, "Vestidos longos", category.Name)
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *repomocks.MockCategoryRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Sucesso",
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), "cat-1").
					Return(&domain.Category{ID: "cat-1", StoreID: "store-1"}, nil)
				repo.EXPECT().
					Delete(gomock.Any(), "cat-1").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Categoria de outra loja não é removida",
			setup: func(repo *repomocks.MockCategoryRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), "cat-1").
					Return(&domain.Category{ID: "cat-1", StoreID: "store-9"}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrCategoryNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockCategoryRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			tt.validate(t, service.Delete(context.Background(), "store-1", "cat-1"))
		})
	}
}
