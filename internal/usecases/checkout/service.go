package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"github.com/vfg2006/store-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/store-revenue-api/pkg/log"
	"github.com/vfg2006/store-revenue-api/pkg/utils"
)

type Checkouter interface {
	// CreateOrder registra um pedido não pago com os produtos informados.
	CreateOrder(ctx context.Context, storeID string, userID int, request *domain.CheckoutRequest) (*domain.Order, error)
	// MarkOrderPaid marca o pedido como pago e invalida as chaves de receita
	// da loja correspondente.
	MarkOrderPaid(ctx context.Context, orderID string) error
}

type Service struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	revenuer    revenue.Revenuer
	now         func() time.Time
}

func NewService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	revenuer revenue.Revenuer,
) Checkouter {
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		revenuer:    revenuer,
		now:         time.Now,
	}
}

func (s *Service) CreateOrder(ctx context.Context, storeID string, userID int, request *domain.CheckoutRequest) (*domain.Order, error) {
	if storeID == "" {
		return nil, ErrMissingStoreID
	}

	if request == nil || len(request.ProductIDs) == 0 {
		return nil, ErrEmptyOrder
	}

	products, err := s.productRepo.GetByIDs(ctx, request.ProductIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos do pedido")
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	orderNumber, err := utils.GenerateOrderNumber()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar número do pedido")
	}

	order := &domain.Order{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		UserID:      userID,
		OrderNumber: orderNumber,
		IsPaid:      false,
		CreatedAt:   s.now().UTC(),
	}

	// Um item por identificador solicitado, preservando repetições do carrinho.
	for _, productID := range request.ProductIDs {
		product, ok := byID[productID]
		if !ok {
			return nil, errors.WithMessage(ErrProductNotFound, productID)
		}

		order.Items = append(order.Items, &domain.OrderItem{
			ID:      uuid.New().String(),
			OrderID: order.ID,
			Product: product,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "erro ao criar pedido")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id":     storeID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	}).Info("checkout: pedido criado")

	return order, nil
}

func (s *Service) MarkOrderPaid(ctx context.Context, orderID string) error {
	storeID, err := s.orderRepo.MarkPaid(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar pedido como pago")
	}

	// A invalidação é melhor esforço: o TTL cobre a janela em que o cache
	// ficaria defasado se a remoção falhar.
	if err := s.revenuer.InvalidateStore(ctx, storeID); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"store_id": storeID,
			"order_id": orderID,
		}).Warn("checkout: falha ao invalidar cache de receita")
	}

	return nil
}
