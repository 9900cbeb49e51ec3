package revenue

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-revenue-api/infrastructure/cache"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository"
	"github.com/vfg2006/store-revenue-api/internal/config"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"github.com/vfg2006/store-revenue-api/pkg/log"
	"github.com/vfg2006/store-revenue-api/pkg/utils"
)

// Service compõe o resolvedor de janelas, o agregador e o cache de métricas.
type Service struct {
	orderRepo    repository.OrderRepository
	cache        *metricCache
	queryTimeout time.Duration
	now          func() time.Time
}

func NewService(
	orderRepo repository.OrderRepository,
	cacheStore cache.Store,
	cfg *config.Config,
) Revenuer {
	return &Service{
		orderRepo:    orderRepo,
		cache:        newMetricCache(cacheStore, cfg.Revenue.CacheTTL, cfg.Revenue.CacheTimeout),
		queryTimeout: cfg.Revenue.QueryTimeout,
		now:          time.Now,
	}
}

// aggregate soma os preços dos itens de todos os pedidos pagos da loja dentro
// da janela (quando houver), em aritmética decimal de ponta a ponta. Zero
// pedidos é um total zero válido; falha na consulta vira ErrComputationFailed.
func (s *Service) aggregate(ctx context.Context, storeID string, window *domain.TimeWindow) (decimal.Decimal, error) {
	if storeID == "" {
		return decimal.Zero, ErrMissingStoreID
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	orders, err := s.orderRepo.FindPaidOrders(queryCtx, storeID, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("store_id", storeID).Error("revenue: erro ao consultar pedidos pagos")
		return decimal.Zero, errors.WithMessage(ErrComputationFailed, err.Error())
	}

	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.ItemsTotal())
	}

	return total, nil
}

func (s *Service) TotalRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	total, cached, err := s.cache.getOrCompute(ctx, totalKey(storeID), func(ctx context.Context) (decimal.Decimal, error) {
		return s.aggregate(ctx, storeID, nil)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": storeID,
		"metric":   domain.MetricTotalRevenue,
		"cached":   cached,
	}).Debug("revenue: receita total resolvida")

	return &domain.RevenueReport{
		StoreID: storeID,
		Metric:  domain.MetricTotalRevenue,
		Total:   total,
	}, nil
}

func (s *Service) RevenueOnDate(ctx context.Context, storeID, date string) (*domain.RevenueReport, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	parsed, err := utils.ParseDate(date)
	if err != nil {
		// Data inválida produz resposta vazia, não erro.
		log.ForContext(ctx).WithFields(log.Fields{
			"store_id": storeID,
			"date":     date,
		}).Warn("revenue: data inválida na consulta por dia")
		return nil, nil
	}

	window := domain.DayWindow(*parsed)

	total, err := s.aggregate(ctx, storeID, &window)
	if err != nil {
		return nil, err
	}

	return &domain.RevenueReport{
		StoreID: storeID,
		Metric:  domain.MetricRevenueByDate,
		Period:  parsed.Format(time.DateOnly),
		Total:   total,
	}, nil
}

func (s *Service) CurrentMonthRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error) {
	window := domain.MonthWindow(s.now())
	return s.monthRevenue(ctx, storeID, domain.MetricCurrentMonthRevenue, window)
}

func (s *Service) PreviousMonthRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error) {
	window := domain.PreviousMonthWindow(s.now())
	return s.monthRevenue(ctx, storeID, domain.MetricPreviousMonthRevenue, window)
}

func (s *Service) monthRevenue(ctx context.Context, storeID, metric string, window domain.TimeWindow) (*domain.RevenueReport, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	total, cached, err := s.cache.getOrCompute(ctx, monthKey(storeID, window.Period()), func(ctx context.Context) (decimal.Decimal, error) {
		return s.aggregate(ctx, storeID, &window)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": storeID,
		"metric":   metric,
		"period":   window.Period(),
		"cached":   cached,
	}).Debug("revenue: receita mensal resolvida")

	return &domain.RevenueReport{
		StoreID: storeID,
		Metric:  metric,
		Period:  window.Period(),
		Total:   total,
	}, nil
}

// InvalidateStore remove as entradas de receita da loja que podem ter ficado
// obsoletas após um pedido virar pago: o total geral e o mês corrente. Meses
// anteriores não mudam com pedidos novos.
func (s *Service) InvalidateStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return ErrMissingStoreID
	}

	currentMonth := domain.MonthWindow(s.now())
	return s.cache.invalidate(ctx,
		totalKey(storeID),
		monthKey(storeID, currentMonth.Period()),
	)
}
