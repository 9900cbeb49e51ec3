package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository"
	"github.com/vfg2006/store-revenue-api/internal/config"
	"github.com/vfg2006/store-revenue-api/internal/usecases/revenue"
)

// CacheWarmConfig representa a configuração do agendador de aquecimento de cache
type CacheWarmConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmService recomputa periodicamente as métricas de receita das lojas
// com pedidos pagos, para que as consultas encontrem o cache quente.
type CacheWarmService struct {
	scheduler           *gocron.Scheduler
	config              CacheWarmConfig
	orderRepo           repository.OrderRepository
	revenuer            revenue.Revenuer
	warmRunning         bool
	warmMutex           sync.Mutex
	lastWarmStartedAt   time.Time
	lastWarmCompletedAt time.Time
}

// NewCacheWarmService cria uma nova instância do serviço de aquecimento de cache
func NewCacheWarmService(
	orderRepo repository.OrderRepository,
	revenuer revenue.Revenuer,
	appConfig *config.Config,
) *CacheWarmService {
	warmConfig := CacheWarmConfig{
		CronSchedule: appConfig.CacheWarm.CronSchedule,
		Enabled:      appConfig.CacheWarm.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmConfig.CronSchedule,
		"warm_enabled":  warmConfig.Enabled,
	}).Info("Configuração do agendador de aquecimento de cache carregada")

	return &CacheWarmService{
		scheduler:   scheduler,
		config:      warmConfig,
		orderRepo:   orderRepo,
		revenuer:    revenuer,
		warmRunning: false,
	}
}

// Start inicia o agendador
func (s *CacheWarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de cache de receita desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmAllStores(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de cache de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// warmAllStores recomputa as métricas de receita de todas as lojas com pedidos pagos
func (s *CacheWarmService) warmAllStores(ctx context.Context) {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando")
		return
	}
	s.warmRunning = true
	s.warmMutex.Unlock()

	startTime := time.Now()
	s.warmMutex.Lock()
	s.lastWarmStartedAt = startTime
	s.warmMutex.Unlock()

	defer func() {
		s.warmMutex.Lock()
		s.warmRunning = false
		s.warmMutex.Unlock()
	}()

	storeIDs, err := s.orderRepo.ListStoreIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para aquecimento de cache")
		return
	}

	if len(storeIDs) == 0 {
		logrus.Info("Nenhuma loja com pedido pago para aquecer")
		return
	}

	warmed := 0
	for _, storeID := range storeIDs {
		if err := s.warmStore(ctx, storeID); err != nil {
			logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao aquecer cache de receita da loja")
			continue
		}
		warmed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"stores":   len(storeIDs),
		"warmed":   warmed,
	}).Info("Aquecimento de cache de receita concluído")

	s.warmMutex.Lock()
	s.lastWarmCompletedAt = time.Now()
	s.warmMutex.Unlock()
}

// warmStore recomputa as métricas cacheadas de uma loja. Consultar pelo caminho
// normal preenche o cache como efeito colateral.
func (s *CacheWarmService) warmStore(ctx context.Context, storeID string) error {
	if err := s.revenuer.InvalidateStore(ctx, storeID); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Warn("Erro ao invalidar chaves antes do aquecimento")
	}

	if _, err := s.revenuer.TotalRevenue(ctx, storeID); err != nil {
		return err
	}

	if _, err := s.revenuer.CurrentMonthRevenue(ctx, storeID); err != nil {
		return err
	}

	if _, err := s.revenuer.PreviousMonthRevenue(ctx, storeID); err != nil {
		return err
	}

	return nil
}

// TriggerManualWarm inicia manualmente um ciclo de aquecimento
func (s *CacheWarmService) TriggerManualWarm(ctx context.Context) {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.warmMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de cache de receita")

	// O ciclo vive além da requisição que o disparou: o contexto é desacoplado
	// do cancelamento, preservando apenas os valores (ID de correlação).
	go s.warmAllStores(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmService) GetStatus() map[string]any {
	s.warmMutex.Lock()
	startedAt := s.lastWarmStartedAt
	completedAt := s.lastWarmCompletedAt
	s.warmMutex.Unlock()

	return map[string]any{
		"warm_enabled":           s.config.Enabled,
		"warm_cron":              s.config.CronSchedule,
		"last_warm_started_at":   startedAt,
		"last_warm_completed_at": completedAt,
	}
}
