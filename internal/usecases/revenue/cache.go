package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-revenue-api/infrastructure/cache"
	"github.com/vfg2006/store-revenue-api/pkg/log"
)

// metricCache implementa o padrão cache-aside sobre o Store: lê a chave da
// métrica; presente, devolve o valor sem recomputar; ausente, computa, grava
// e devolve. Qualquer falha do cache (inclusive timeout) degrada para a
// computação direta — o cache nunca derruba uma consulta.
type metricCache struct {
	store   cache.Store
	ttl     time.Duration
	timeout time.Duration
}

func newMetricCache(store cache.Store, ttl, timeout time.Duration) *metricCache {
	return &metricCache{
		store:   store,
		ttl:     ttl,
		timeout: timeout,
	}
}

// As chaves são compostas por métrica + loja (e período, nas mensais) para
// que lojas e meses diferentes nunca compartilhem uma entrada.
func totalKey(storeID string) string {
	return fmt.Sprintf("revenue:total:%s", storeID)
}

func monthKey(storeID, period string) string {
	return fmt.Sprintf("revenue:month:%s:%s", storeID, period)
}

// getOrCompute devolve o total da métrica, preferindo o cache. O booleano
// indica se o valor veio do cache.
func (c *metricCache) getOrCompute(
	ctx context.Context,
	key string,
	compute func(context.Context) (decimal.Decimal, error),
) (decimal.Decimal, bool, error) {
	logger := log.ForContext(ctx)

	if c.store == nil {
		total, err := compute(ctx)
		return total, false, err
	}

	cacheCtx, cancel := context.WithTimeout(ctx, c.timeout)
	cached, found, err := c.store.GetString(cacheCtx, key)
	cancel()

	if err != nil {
		// Fail-open: cache indisponível não é erro para o chamador.
		logger.WithError(err).WithField("cache_key", key).Warn("revenue: cache indisponível, computando direto")
		total, err := compute(ctx)
		return total, false, err
	}

	if found {
		total, err := decimal.NewFromString(cached)
		if err == nil {
			return total, true, nil
		}
		// Entrada corrompida conta como miss e será sobrescrita.
		logger.WithError(err).WithField("cache_key", key).Warn("revenue: entrada de cache inválida, recomputando")
	}

	total, err := compute(ctx)
	if err != nil {
		return decimal.Zero, false, err
	}

	cacheCtx, cancel = context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.store.SetString(cacheCtx, key, total.String(), c.ttl); err != nil {
		// Gravação falha não invalida o resultado já computado.
		logger.WithError(err).WithField("cache_key", key).Warn("revenue: erro ao popular o cache")
	}

	return total, false, nil
}

// invalidate remove as chaves informadas, ignorando falhas do cache.
func (c *metricCache) invalidate(ctx context.Context, keys ...string) error {
	if c.store == nil || len(keys) == 0 {
		return nil
	}

	cacheCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.store.Delete(cacheCtx, keys...); err != nil {
		log.ForContext(ctx).WithError(err).Warn("revenue: erro ao invalidar chaves de cache")
		return err
	}

	return nil
}
