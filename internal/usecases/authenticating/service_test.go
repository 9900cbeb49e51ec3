package authenticating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/store-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-revenue-api/internal/config"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, repo *repomocks.MockUserRepository)
		validate func(t *testing.T, service Authenticator, token string, err error)
	}{
		{
			name:     "Sucesso - token emitido carrega as claims do usuário",
			email:    " Maria@Loja.com ",
			password: "senha-forte",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "maria@loja.com").
					Return(&domain.User{
						ID:           7,
						Name:         "Maria",
						Email:        "maria@loja.com",
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       true,
						RoleID:       1,
					}, nil)
			},
			validate: func(t *testing.T, service Authenticator, token string, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, 1, claims.UserRoleID)
				assert.Equal(t, "maria@loja.com", claims.UserEmail)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "maria@loja.com",
			password: "senha-errada",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "maria@loja.com").
					Return(&domain.User{
						ID:           7,
						Email:        "maria@loja.com",
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, _ Authenticator, token string, err error) {
				assert.True(t, errors.Is(err, ErrInvalidCredentials))
				assert.Empty(t, token)
			},
		},
		{
			name:     "Conta desativada",
			email:    "maria@loja.com",
			password: "senha-forte",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "maria@loja.com").
					Return(&domain.User{
						ID:           7,
						Email:        "maria@loja.com",
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       false,
					}, nil)
			},
			validate: func(t *testing.T, _ Authenticator, token string, err error) {
				assert.True(t, errors.Is(err, ErrUserDisabled))
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@loja.com",
			password: "senha-forte",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "ninguem@loja.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, _ Authenticator, token string, err error) {
				assert.True(t, errors.Is(err, ErrUserNotFound))
				assert.Empty(t, token)
			},
		},
		{
			name:     "Credenciais em branco",
			email:    "",
			password: "",
			setup:    func(*testing.T, *repomocks.MockUserRepository) {},
			validate: func(t *testing.T, _ Authenticator, token string, err error) {
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
				assert.Empty(t, token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockUserRepository(ctrl)
			tt.setup(t, repo)

			service := NewService(repo, testConfig())
			token, err := service.LoginUser(context.Background(), tt.email, tt.password)
			tt.validate(t, service, token, err)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(repo *repomocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "Sucesso - senha é armazenada com hash",
			user: &domain.User{Name: "Maria", Email: "maria@loja.com", PasswordHash: "senha-forte"},
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "maria@loja.com").
					Return(nil, nil)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.NotEqual(t, "senha-forte", user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
						assert.True(t, user.Active)
						assert.Equal(t, 2, user.RoleID)
						user.ID = 7
						return user, nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, 7, user.ID)
			},
		},
		{
			name: "Email já cadastrado",
			user: &domain.User{Name: "Maria", Email: "maria@loja.com", PasswordHash: "senha-forte"},
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().
					GetByEmail(gomock.Any(), "maria@loja.com").
					Return(&domain.User{ID: 7}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.True(t, errors.Is(err, ErrUserAlreadyExists))
				assert.Nil(t, user)
			},
		},
		{
			name:  "Dados obrigatórios ausentes",
			user:  &domain.User{Email: "maria@loja.com"},
			setup: func(*repomocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
				assert.Nil(t, user)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, testConfig())
			user, err := service.CreateUser(context.Background(), tt.user)
			tt.validate(t, user, err)
		})
	}
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(repomocks.NewMockUserRepository(ctrl), testConfig())

	claims, err := service.ValidateToken("token-que-nao-e-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
