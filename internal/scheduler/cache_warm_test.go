package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/store-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-revenue-api/internal/config"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	revenuemocks "github.com/vfg2006/store-revenue-api/internal/usecases/revenue/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(orderRepo *repomocks.MockOrderRepository, revenuer *revenuemocks.MockRevenuer) *CacheWarmService {
	return NewCacheWarmService(orderRepo, revenuer, &config.Config{
		CacheWarm: config.CacheWarm{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	})
}

func expectStoreWarm(revenuer *revenuemocks.MockRevenuer, storeID string) {
	report := &domain.RevenueReport{StoreID: storeID}
	revenuer.EXPECT().InvalidateStore(gomock.Any(), storeID).Return(nil)
	revenuer.EXPECT().TotalRevenue(gomock.Any(), storeID).Return(report, nil)
	revenuer.EXPECT().CurrentMonthRevenue(gomock.Any(), storeID).Return(report, nil)
	revenuer.EXPECT().PreviousMonthRevenue(gomock.Any(), storeID).Return(report, nil)
}

func TestCacheWarmService_WarmAllStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := repomocks.NewMockOrderRepository(ctrl)
	revenuer := revenuemocks.NewMockRevenuer(ctrl)

	orderRepo.EXPECT().
		ListStoreIDs(gomock.Any()).
		Return([]string{"store-1", "store-2"}, nil)

	expectStoreWarm(revenuer, "store-1")
	expectStoreWarm(revenuer, "store-2")

	service := newTestService(orderRepo, revenuer)
	service.warmAllStores(context.Background())

	assert.False(t, service.lastWarmCompletedAt.IsZero())
}

func TestCacheWarmService_WarmAllStores_ContinuesAfterStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := repomocks.NewMockOrderRepository(ctrl)
	revenuer := revenuemocks.NewMockRevenuer(ctrl)

	orderRepo.EXPECT().
		ListStoreIDs(gomock.Any()).
		Return([]string{"store-1", "store-2"}, nil)

	// store-1 falha no total e as demais métricas nem são consultadas.
	revenuer.EXPECT().InvalidateStore(gomock.Any(), "store-1").Return(nil)
	revenuer.EXPECT().
		TotalRevenue(gomock.Any(), "store-1").
		Return(nil, errors.New("banco indisponível"))

	expectStoreWarm(revenuer, "store-2")

	service := newTestService(orderRepo, revenuer)
	service.warmAllStores(context.Background())
}

func TestCacheWarmService_WarmAllStores_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := repomocks.NewMockOrderRepository(ctrl)
	revenuer := revenuemocks.NewMockRevenuer(ctrl)

	orderRepo.EXPECT().
		ListStoreIDs(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	service := newTestService(orderRepo, revenuer)
	service.warmAllStores(context.Background())

	assert.True(t, service.lastWarmCompletedAt.IsZero())
}

func TestCacheWarmService_TriggerManualWarm_SurvivesRequestCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := repomocks.NewMockOrderRepository(ctrl)
	revenuer := revenuemocks.NewMockRevenuer(ctrl)

	done := make(chan struct{})
	orderRepo.EXPECT().
		ListStoreIDs(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]string, error) {
			// O ciclo não pode herdar o cancelamento da requisição que o disparou.
			assert.NoError(t, ctx.Err())
			close(done)
			return nil, nil
		})

	service := newTestService(orderRepo, revenuer)

	reqCtx, cancelReq := context.WithCancel(context.Background())
	service.TriggerManualWarm(reqCtx)
	cancelReq()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("aquecimento manual não consultou as lojas")
	}
}

func TestCacheWarmService_GetStatus_ReflectsCompletedCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := repomocks.NewMockOrderRepository(ctrl)
	revenuer := revenuemocks.NewMockRevenuer(ctrl)

	orderRepo.EXPECT().
		ListStoreIDs(gomock.Any()).
		Return([]string{"store-1"}, nil)
	expectStoreWarm(revenuer, "store-1")

	service := newTestService(orderRepo, revenuer)
	service.warmAllStores(context.Background())

	status := service.GetStatus()
	assert.Equal(t, true, status["warm_enabled"])
	assert.False(t, status["last_warm_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_warm_completed_at"].(time.Time).IsZero())
}

func TestCacheWarmService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewCacheWarmService(
		repomocks.NewMockOrderRepository(ctrl),
		revenuemocks.NewMockRevenuer(ctrl),
		&config.Config{CacheWarm: config.CacheWarm{Enabled: false}},
	)

	assert.NoError(t, service.Start(context.Background()))
}
