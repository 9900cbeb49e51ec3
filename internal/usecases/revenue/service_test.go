package revenue

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/store-revenue-api/infrastructure/cache/mocks"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência fixa para os testes: 15 de março de 2024.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) *Service {
	return &Service{
		orderRepo:    orderRepo,
		cache:        newMetricCache(store, 15*time.Minute, 500*time.Millisecond),
		queryTimeout: 5 * time.Second,
		now:          func() time.Time { return testNow },
	}
}

func paidOrder(id string, createdAt time.Time, prices ...string) *domain.Order {
	order := &domain.Order{
		ID:        id,
		StoreID:   "store-1",
		IsPaid:    true,
		CreatedAt: createdAt,
	}
	for _, p := range prices {
		order.Items = append(order.Items, &domain.OrderItem{
			OrderID: id,
			Product: &domain.Product{Price: decimal.RequireFromString(p)},
		})
	}
	return order
}

func TestService_TotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		setup    func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore)
		validate func(t *testing.T, report *domain.RevenueReport, err error)
	}{
		{
			name:    "Cache vazio - soma itens de todos os pedidos pagos e popula o cache",
			storeID: "store-1",
			setup: func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {
				store.EXPECT().
					GetString(gomock.Any(), "revenue:total:store-1").
					Return("", false, nil)

				// Pedido A (10.00 + 5.50) e pedido B (3.25); o pedido não pago
				// de 100.00 nunca é retornado pelo repositório.
				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", nil).
					Return([]*domain.Order{
						paidOrder("order-a", testNow, "10.00", "5.50"),
						paidOrder("order-b", testNow, "3.25"),
					}, nil)

				store.EXPECT().
					SetString(gomock.Any(), "revenue:total:store-1", "18.75", 15*time.Minute).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				require.NotNil(t, report)
				assert.Equal(t, "store-1", report.StoreID)
				assert.Equal(t, domain.MetricTotalRevenue, report.Metric)
				assert.True(t, decimal.RequireFromString("18.75").Equal(report.Total))
			},
		},
		{
			name:    "Cache populado - retorna o valor sem consultar o repositório",
			storeID: "store-1",
			setup: func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {
				store.EXPECT().
					GetString(gomock.Any(), "revenue:total:store-1").
					Return("18.75", true, nil)
				// Nenhuma expectativa no repositório: qualquer chamada falha o teste.
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString("18.75").Equal(report.Total))
			},
		},
		{
			name:    "Cache indisponível - computa direto e retorna o total correto (fail-open)",
			storeID: "store-1",
			setup: func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {
				store.EXPECT().
					GetString(gomock.Any(), "revenue:total:store-1").
					Return("", false, errors.New("connection refused"))

				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", nil).
					Return([]*domain.Order{
						paidOrder("order-a", testNow, "10.00", "5.50"),
						paidOrder("order-b", testNow, "3.25"),
					}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString("18.75").Equal(report.Total))
			},
		},
		{
			name:    "Nenhum pedido pago - total zero, não é erro",
			storeID: "store-1",
			setup: func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {
				store.EXPECT().
					GetString(gomock.Any(), "revenue:total:store-1").
					Return("", false, nil)

				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", nil).
					Return(nil, nil)

				store.EXPECT().
					SetString(gomock.Any(), "revenue:total:store-1", "0", 15*time.Minute).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.True(t, report.Total.IsZero())
			},
		},
		{
			name:    "Repositório falha - erro de computação distinguível",
			storeID: "store-1",
			setup: func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {
				store.EXPECT().
					GetString(gomock.Any(), "revenue:total:store-1").
					Return("", false, nil)

				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", nil).
					Return(nil, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrComputationFailed))
				assert.Nil(t, report)
			},
		},
		{
			name:    "Loja vazia - erro de validação",
			storeID: "",
			setup:   func(orderRepo *mocks.MockOrderRepository, store *cachemocks.MockStore) {},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				assert.ErrorIs(t, err, ErrMissingStoreID)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderRepo := mocks.NewMockOrderRepository(ctrl)
			store := cachemocks.NewMockStore(ctrl)
			tt.setup(orderRepo, store)

			service := newTestService(orderRepo, store)
			report, err := service.TotalRevenue(context.Background(), tt.storeID)
			tt.validate(t, report, err)
		})
	}
}

func TestService_TotalRevenue_CacheAsideIdempotence(t *testing.T) {
	// Duas chamadas consecutivas retornam o mesmo valor e a segunda não
	// dispara consulta ao repositório.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	store := cachemocks.NewMockStore(ctrl)

	orderRepo.EXPECT().
		FindPaidOrders(gomock.Any(), "store-1", nil).
		Return([]*domain.Order{paidOrder("order-a", testNow, "10.00", "5.50")}, nil).
		Times(1)

	gomock.InOrder(
		store.EXPECT().
			GetString(gomock.Any(), "revenue:total:store-1").
			Return("", false, nil),
		store.EXPECT().
			SetString(gomock.Any(), "revenue:total:store-1", "15.5", 15*time.Minute).
			Return(nil),
		store.EXPECT().
			GetString(gomock.Any(), "revenue:total:store-1").
			Return("15.5", true, nil),
	)

	service := newTestService(orderRepo, store)

	first, err := service.TotalRevenue(context.Background(), "store-1")
	require.NoError(t, err)

	second, err := service.TotalRevenue(context.Background(), "store-1")
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
}

func TestService_RevenueOnDate(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		date     string
		setup    func(orderRepo *mocks.MockOrderRepository)
		validate func(t *testing.T, report *domain.RevenueReport, err error)
	}{
		{
			name:    "Dia com um pedido de dois itens",
			storeID: "store-1",
			date:    "2024-03-15",
			setup: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, window *domain.TimeWindow) ([]*domain.Order, error) {
						require.NotNil(t, window)
						assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), window.Start)
						assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC), window.End)
						return []*domain.Order{
							paidOrder("order-a", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), "10.00", "5.50"),
						}, nil
					})
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				require.NotNil(t, report)
				assert.Equal(t, domain.MetricRevenueByDate, report.Metric)
				assert.Equal(t, "2024-03-15", report.Period)
				assert.True(t, decimal.RequireFromString("15.50").Equal(report.Total))
			},
		},
		{
			name:    "Pedido no primeiro segundo do dia entra na janela",
			storeID: "store-1",
			date:    "2024-04-01",
			setup: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.EXPECT().
					FindPaidOrders(gomock.Any(), "store-1", gomock.Any()).
					Return([]*domain.Order{
						paidOrder("order-b", time.Date(2024, 4, 1, 0, 0, 1, 0, time.UTC), "3.25"),
					}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString("3.25").Equal(report.Total))
			},
		},
		{
			name:    "Data inválida - resposta vazia sem erro e sem consulta",
			storeID: "store-1",
			date:    "não-é-data",
			setup:   func(orderRepo *mocks.MockOrderRepository) {},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				assert.NoError(t, err)
				assert.Nil(t, report)
			},
		},
		{
			name:    "Data vazia - resposta vazia sem erro",
			storeID: "store-1",
			date:    "",
			setup:   func(orderRepo *mocks.MockOrderRepository) {},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				assert.NoError(t, err)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderRepo := mocks.NewMockOrderRepository(ctrl)
			store := cachemocks.NewMockStore(ctrl)
			tt.setup(orderRepo)

			service := newTestService(orderRepo, store)
			report, err := service.RevenueOnDate(context.Background(), tt.storeID, tt.date)
			tt.validate(t, report, err)
		})
	}
}

func TestService_CurrentMonthRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	store := cachemocks.NewMockStore(ctrl)

	// A chave mensal embute loja e período, nunca um nome de métrica solto.
	store.EXPECT().
		GetString(gomock.Any(), "revenue:month:store-1:2024-03").
		Return("", false, nil)

	orderRepo.EXPECT().
		FindPaidOrders(gomock.Any(), "store-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, window *domain.TimeWindow) ([]*domain.Order, error) {
			require.NotNil(t, window)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), window.Start)
			assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999000000, time.UTC), window.End)
			return []*domain.Order{paidOrder("order-a", testNow, "10.00")}, nil
		})

	store.EXPECT().
		SetString(gomock.Any(), "revenue:month:store-1:2024-03", "10", 15*time.Minute).
		Return(nil)

	service := newTestService(orderRepo, store)
	report, err := service.CurrentMonthRevenue(context.Background(), "store-1")

	require.NoError(t, err)
	assert.Equal(t, domain.MetricCurrentMonthRevenue, report.Metric)
	assert.Equal(t, "2024-03", report.Period)
	assert.True(t, decimal.RequireFromString("10").Equal(report.Total))
}

func TestService_PreviousMonthRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	store := cachemocks.NewMockStore(ctrl)

	store.EXPECT().
		GetString(gomock.Any(), "revenue:month:store-1:2024-02").
		Return("", false, nil)

	orderRepo.EXPECT().
		FindPaidOrders(gomock.Any(), "store-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, window *domain.TimeWindow) ([]*domain.Order, error) {
			require.NotNil(t, window)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
			assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), window.End)
			return nil, nil
		})

	store.EXPECT().
		SetString(gomock.Any(), "revenue:month:store-1:2024-02", "0", 15*time.Minute).
		Return(nil)

	service := newTestService(orderRepo, store)
	report, err := service.PreviousMonthRevenue(context.Background(), "store-1")

	require.NoError(t, err)
	assert.Equal(t, domain.MetricPreviousMonthRevenue, report.Metric)
	assert.Equal(t, "2024-02", report.Period)
	assert.True(t, report.Total.IsZero())
}

func TestService_InvalidateStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	store := cachemocks.NewMockStore(ctrl)

	store.EXPECT().
		Delete(gomock.Any(), "revenue:total:store-1", "revenue:month:store-1:2024-03").
		Return(nil)

	service := newTestService(orderRepo, store)
	assert.NoError(t, service.InvalidateStore(context.Background(), "store-1"))
}
