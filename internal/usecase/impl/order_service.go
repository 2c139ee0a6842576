package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderServiceParams holds the dependencies of the order engine.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	FarmRepo   repository.FarmRepository
	Publisher  service.EventPublisher
	CodeHasher service.CodeHasher
	QRCode     service.QRCodeService
	Exporter   service.FarmOrderExporter
	Config     *config.Config
	Logger     *slog.Logger
}

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	farmRepo   repository.FarmRepository
	publisher  service.EventPublisher
	codeHasher service.CodeHasher
	qrcode     service.QRCodeService
	exporter   service.FarmOrderExporter
	codeLength int
	codeTTL    time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderService creates the order engine.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	codeLength, codeTTL := 6, 24*time.Hour
	if params.Config != nil && params.Config.Delivery != nil {
		if params.Config.Delivery.CodeLength > 0 {
			codeLength = params.Config.Delivery.CodeLength
		}
		if params.Config.Delivery.CodeTTL > 0 {
			codeTTL = params.Config.Delivery.CodeTTL
		}
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		farmRepo:   params.FarmRepo,
		publisher:  params.Publisher,
		codeHasher: params.CodeHasher,
		qrcode:     params.QRCode,
		exporter:   params.Exporter,
		codeLength: codeLength,
		codeTTL:    codeTTL,
		logger:     params.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// IngestOrder persists a placed order and reserves every item's product quantity.
// Any failed reservation rejects the whole order. A repeated order ID returns the stored order.
func (s *orderService) IngestOrder(ctx context.Context, placed *entity.PlacedOrder) (*entity.Order, error) {
	if err := validatePlacedOrder(placed); err != nil {
		return nil, err
	}

	var (
		order     *entity.Order
		duplicate bool
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		farmRepo := repoFactory.FarmRepo()
		productRepo := repoFactory.ProductRepo()

		existing, err := orderRepo.FindByID(ctx, placed.OrderID)
		if err == nil {
			order = existing
			duplicate = true

			return nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check existing order")
		}

		now := s.now()
		order = &entity.Order{
			ID:                    placed.OrderID,
			ConsumerID:            placed.ConsumerID,
			CreatedAt:             now,
			EstimatedDeliveryTime: placed.EstimatedDeliveryTime,
			FarmOrders:            make([]*entity.FarmOrder, 0, len(placed.FarmOrders)),
		}

		for _, placedFarmOrder := range placed.FarmOrders {
			farm, err := findFarm(ctx, farmRepo, placedFarmOrder.FarmID)
			if err != nil {
				return err
			}
			if err := requireApprovedFarm(farm); err != nil {
				return err
			}

			farmOrder := &entity.FarmOrder{
				ID:        uuid.New(),
				OrderID:   order.ID,
				FarmID:    farm.ID,
				Status:    entity.FarmOrderStatusPending,
				Items:     make([]entity.OrderItem, 0, len(placedFarmOrder.Items)),
				CreatedAt: now,
				UpdatedAt: now,
			}

			for _, placedItem := range placedFarmOrder.Items {
				product, err := productRepo.FindByID(ctx, placedItem.ProductID)
				if err != nil {
					return translateProductError(err)
				}
				if !product.BelongsToFarm(farm.ID) {
					return errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("product is not sold by this farm"), "product %s farm %s", product.ID, farm.ID)
				}
				if !product.Available {
					return errors.Wrapf(domainerrors.ErrInsufficientQuantity, "product %s is unavailable", product.ID)
				}

				// Reserve; a conditional decrement so concurrent orders cannot oversell.
				if err := productRepo.AdjustQuantity(ctx, product.ID, -placedItem.Quantity); err != nil {
					return translateProductError(err)
				}

				farmOrder.Items = append(farmOrder.Items, entity.OrderItem{
					ID:          uuid.New(),
					FarmOrderID: farmOrder.ID,
					ProductID:   product.ID,
					ProductName: product.CropName,
					Quantity:    placedItem.Quantity,
					UnitPrice:   placedItem.UnitPrice,
				})
			}

			order.FarmOrders = append(order.FarmOrders, farmOrder)
		}

		order.TotalAmount = order.ComputeTotal()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			// Lost an insert race against a redelivery of the same order.
			return s.findOrder(ctx, placed.OrderID)
		}

		return nil, errors.Wrap(err, "failed to ingest order")
	}

	if duplicate {
		s.logger.InfoContext(ctx, "Order already ingested", slog.String("orderID", order.ID.String()))

		return order, nil
	}

	s.logger.InfoContext(ctx, "Order ingested",
		slog.String("orderID", order.ID.String()),
		slog.Int("farmOrders", len(order.FarmOrders)),
		slog.String("total", order.TotalAmount.String()),
	)

	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		constants.EventOrderAccepted,
		order.ID,
		order.ConsumerID,
		"訂單已成立",
		"訂單金額 "+order.TotalAmount.StringFixed(2),
		map[string]string{"order_id": order.ID.String()},
	))

	return order, nil
}

// validatePlacedOrder checks the shape of a checkout event before anything is reserved.
func validatePlacedOrder(placed *entity.PlacedOrder) error {
	if placed == nil || placed.OrderID == uuid.Nil || placed.ConsumerID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("order id and consumer id are required"), "invalid order")
	}
	if len(placed.FarmOrders) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("order has no farm orders"), "invalid order")
	}

	seenFarms := make(map[uuid.UUID]struct{}, len(placed.FarmOrders))
	for _, farmOrder := range placed.FarmOrders {
		if _, ok := seenFarms[farmOrder.FarmID]; ok {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("farm appears in more than one farm order"), "invalid order")
		}
		seenFarms[farmOrder.FarmID] = struct{}{}

		if len(farmOrder.Items) == 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("farm order has no items"), "invalid order")
		}
		for _, item := range farmOrder.Items {
			if item.Quantity <= 0 {
				return errors.Wrapf(domainerrors.ErrInvalidQuantity, "item %s quantity %d", item.ProductID, item.Quantity)
			}
			if !entity.IsValidPrice(item.UnitPrice) {
				return errors.Wrapf(domainerrors.ErrInvalidPrice, "item %s price %s", item.ProductID, item.UnitPrice)
			}
		}
	}

	return nil
}

// SetFarmOrderStatus advances a farm order along PENDING->READY->DELIVERED or PENDING->CANCELED.
// Canceling releases the reserved product quantities in the same transaction.
func (s *orderService) SetFarmOrderStatus(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, status entity.FarmOrderStatus, deliveryTime *time.Time) (*entity.FarmOrder, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("unknown farm order status"), "status %q", status)
	}

	var (
		updated    *entity.FarmOrder
		consumerID uuid.UUID
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		farmOrder, err := s.loadFarmOrderForFarm(ctx, actor, orderRepo, repoFactory.FarmRepo(), farmOrderID)
		if err != nil {
			return err
		}
		if !farmOrder.Status.CanTransitionTo(status) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "farm order %s -> %s", farmOrder.Status, status)
		}

		if err := orderRepo.UpdateFarmOrderStatus(ctx, farmOrder.ID, farmOrder.Status, status, deliveryTime); err != nil {
			return translateOrderError(err)
		}

		if status == entity.FarmOrderStatusCanceled {
			if err := s.releaseReservation(ctx, repoFactory.ProductRepo(), farmOrder); err != nil {
				return err
			}
		}

		order, err := orderRepo.FindByID(ctx, farmOrder.OrderID)
		if err != nil {
			return translateOrderError(err)
		}
		consumerID = order.ConsumerID

		updated, err = orderRepo.FindFarmOrderByID(ctx, farmOrder.ID)
		if err != nil {
			return translateOrderError(err)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to set farm order status")
	}

	s.logger.InfoContext(ctx, "Farm order status changed",
		slog.String("farmOrderID", updated.ID.String()),
		slog.String("status", string(updated.Status)),
		slog.String("actorID", actor.UserID.String()),
	)

	eventType, title := constants.EventFarmOrderStatus, "訂單狀態更新"
	if status == entity.FarmOrderStatusReady {
		eventType, title = constants.EventFarmOrderReady, "訂單已可取貨"
	}
	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		eventType,
		updated.ID,
		consumerID,
		title,
		"農場訂單狀態："+string(updated.Status),
		map[string]string{
			"order_id":      updated.OrderID.String(),
			"farm_order_id": updated.ID.String(),
			"status":        string(updated.Status),
		},
	))

	return updated, nil
}

// releaseReservation returns each item's quantity to its product. Products deleted since checkout are skipped.
func (s *orderService) releaseReservation(ctx context.Context, productRepo repository.ProductRepository, farmOrder *entity.FarmOrder) error {
	for _, item := range farmOrder.Items {
		err := productRepo.AdjustQuantity(ctx, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			s.logger.WarnContext(ctx, "Reserved product no longer exists",
				slog.String("farmOrderID", farmOrder.ID.String()),
				slog.String("productID", item.ProductID.String()),
			)

			continue
		}

		return errors.Wrap(err, "failed to release reserved quantity")
	}

	return nil
}

// SetFarmOrderDeliveryTime sets the delivery time of a farm order that is not yet terminal.
func (s *orderService) SetFarmOrderDeliveryTime(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, deliveryTime time.Time) (*entity.FarmOrder, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if deliveryTime.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("delivery time is required"), "invalid delivery time")
	}

	farmOrder, err := s.loadFarmOrderForFarm(ctx, actor, s.orderRepo, s.farmRepo, farmOrderID)
	if err != nil {
		return nil, err
	}
	if farmOrder.Status.IsTerminal() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "farm order is %s", farmOrder.Status)
	}

	if err := s.orderRepo.UpdateFarmOrderDeliveryTime(ctx, farmOrder.ID, deliveryTime.UTC()); err != nil {
		return nil, translateOrderError(err)
	}

	updated, err := s.orderRepo.FindFarmOrderByID(ctx, farmOrder.ID)
	if err != nil {
		return nil, translateOrderError(err)
	}

	return updated, nil
}

// GetOrder retrieves an order. Only the consumer who placed it and admins may read it.
func (s *orderService) GetOrder(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Owns(order.ConsumerID) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "not the consumer of the order")
	}

	return order, nil
}

// GetOrderAggregateStatus derives the order status from its farm orders on every call.
func (s *orderService) GetOrderAggregateStatus(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (entity.FarmOrderStatus, error) {
	order, err := s.GetOrder(ctx, actor, orderID)
	if err != nil {
		return "", err
	}

	return order.Status(), nil
}

// ListMyOrders lists the calling consumer's orders.
func (s *orderService) ListMyOrders(ctx context.Context, actor *entity.Actor) ([]*entity.Order, error) {
	if err := requireRole(actor, entity.RoleConsumer); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByConsumer(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListFarmOrders lists the farm orders a farm must fulfil.
func (s *orderService) ListFarmOrders(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]*entity.FarmOrder, error) {
	farm, err := findFarm(ctx, s.farmRepo, farmID)
	if err != nil {
		return nil, err
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}

	farmOrders, err := s.orderRepo.FindFarmOrdersByFarm(ctx, farm.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farm orders")
	}

	return farmOrders, nil
}

// IssueDeliveryCode generates a pickup code for the consumer's order. Only its hash is stored.
func (s *orderService) IssueDeliveryCode(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (*entity.DeliveryCode, error) {
	if err := requireRole(actor, entity.RoleConsumer); err != nil {
		return nil, err
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(order.ConsumerID) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "not the consumer of the order")
	}
	if order.Status() == entity.FarmOrderStatusDelivered {
		return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "order already delivered")
	}

	code, err := generateNumericCode(s.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delivery code")
	}

	hash, err := s.codeHasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash delivery code")
	}

	expiresAt := s.now().Add(s.codeTTL)
	if err := s.orderRepo.SetDeliveryCode(ctx, order.ID, hash, expiresAt); err != nil {
		return nil, translateOrderError(err)
	}

	png, err := s.qrcode.GenerateDeliveryQR(order.ID, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delivery QR code")
	}

	return &entity.DeliveryCode{
		OrderID:   order.ID,
		Code:      code,
		ExpiresAt: expiresAt,
		QRCode:    png,
	}, nil
}

// ConfirmDelivery verifies the consumer's pickup code and marks a READY farm order DELIVERED.
func (s *orderService) ConfirmDelivery(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, code string) (*entity.FarmOrder, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidDeliveryCode)
	}

	var (
		updated    *entity.FarmOrder
		consumerID uuid.UUID
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		farmOrder, err := s.loadFarmOrderForFarm(ctx, actor, orderRepo, repoFactory.FarmRepo(), farmOrderID)
		if err != nil {
			return err
		}
		if !farmOrder.Status.CanTransitionTo(entity.FarmOrderStatusDelivered) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "farm order is %s", farmOrder.Status)
		}

		order, err := orderRepo.FindByID(ctx, farmOrder.OrderID)
		if err != nil {
			return translateOrderError(err)
		}
		if order.DeliveryCodeHash == "" || order.DeliveryCodeExpiresAt == nil {
			return errors.Wrap(domainerrors.ErrInvalidDeliveryCode, "no delivery code issued")
		}
		if s.now().After(*order.DeliveryCodeExpiresAt) {
			return errors.WithStack(domainerrors.ErrDeliveryCodeExpired)
		}
		if !s.codeHasher.Check(code, order.DeliveryCodeHash) {
			return errors.WithStack(domainerrors.ErrInvalidDeliveryCode)
		}
		consumerID = order.ConsumerID

		if err := orderRepo.UpdateFarmOrderStatus(ctx, farmOrder.ID, farmOrder.Status, entity.FarmOrderStatusDelivered, nil); err != nil {
			return translateOrderError(err)
		}

		updated, err = orderRepo.FindFarmOrderByID(ctx, farmOrder.ID)
		if err != nil {
			return translateOrderError(err)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm delivery")
	}

	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		constants.EventDeliveryConfirmed,
		updated.ID,
		consumerID,
		"訂單已送達",
		"農場訂單已完成取貨",
		map[string]string{"order_id": updated.OrderID.String(), "farm_order_id": updated.ID.String()},
	))

	return updated, nil
}

// ExportFarmOrders renders a farm's orders as a spreadsheet.
func (s *orderService) ExportFarmOrders(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]byte, error) {
	farm, err := findFarm(ctx, s.farmRepo, farmID)
	if err != nil {
		return nil, err
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}

	farmOrders, err := s.orderRepo.FindFarmOrdersByFarm(ctx, farm.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farm orders")
	}

	data, err := s.exporter.ExportFarmOrders(ctx, farm, farmOrders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export farm orders")
	}

	return data, nil
}

// loadFarmOrderForFarm loads a farm order and checks the caller fulfils it for an approved farm.
func (s *orderService) loadFarmOrderForFarm(
	ctx context.Context,
	actor *entity.Actor,
	orderRepo repository.OrderRepository,
	farmRepo repository.FarmRepository,
	farmOrderID uuid.UUID,
) (*entity.FarmOrder, error) {
	farmOrder, err := orderRepo.FindFarmOrderByID(ctx, farmOrderID)
	if err != nil {
		return nil, translateOrderError(err)
	}

	farm, err := farmRepo.FindByID(ctx, farmOrder.FarmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			// The farm was deleted; its orders stay readable but can no longer be fulfilled.
			return nil, errors.Wrap(domainerrors.ErrFarmNotApproved, "farm no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}
	if err := requireApprovedFarm(farm); err != nil {
		return nil, err
	}

	return farmOrder, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateOrderError(err)
	}

	return order, nil
}

// translateOrderError maps order repository errors to domain errors.
func translateOrderError(err error) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	case errors.Is(err, repository.ErrFarmOrderNotFound):
		return errors.Wrap(domainerrors.ErrFarmOrderNotFound, "farm order not found")
	case errors.Is(err, repository.ErrFarmOrderStatusChanged):
		return errors.Wrap(domainerrors.ErrInvalidTransition, "farm order status changed concurrently")
	default:
		return errors.Wrap(err, "order persistence failure")
	}
}

// generateNumericCode returns a uniformly random decimal code of the given length.
func generateNumericCode(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
