package postgres

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order together with its farm orders and items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order with all farm orders and items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withFarmOrders(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByConsumer retrieves all orders placed by a consumer, newest first.
func (repo *orderRepository) FindByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withFarmOrders(ctx).
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by consumer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindFarmOrderByID retrieves a single farm order with its items.
func (repo *orderRepository) FindFarmOrderByID(ctx context.Context, id uuid.UUID) (*entity.FarmOrder, error) {
	var farmOrderM model.FarmOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&farmOrderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm order by ID")
	}

	return toFarmOrderDomain(&farmOrderM), nil
}

// FindFarmOrdersByFarm retrieves all farm orders fulfilled by a farm, newest first.
func (repo *orderRepository) FindFarmOrdersByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.FarmOrder, error) {
	var farmOrderModels []*model.FarmOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&farmOrderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find farm orders by farm")
	}

	farmOrders := make([]*entity.FarmOrder, 0, len(farmOrderModels))
	for _, farmOrderM := range farmOrderModels {
		farmOrders = append(farmOrders, toFarmOrderDomain(farmOrderM))
	}

	return farmOrders, nil
}

// UpdateFarmOrderStatus moves a farm order from one status to another only if it is still in from.
func (repo *orderRepository) UpdateFarmOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.FarmOrderStatus, deliveryTime *time.Time) error {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}
	if deliveryTime != nil {
		updates["delivery_time"] = deliveryTime.UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FarmOrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update farm order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.FarmOrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check farm order existence")
		}
		if count == 0 {
			return repository.ErrFarmOrderNotFound
		}

		return repository.ErrFarmOrderStatusChanged
	}

	return nil
}

// UpdateFarmOrderDeliveryTime sets the delivery time of a farm order.
func (repo *orderRepository) UpdateFarmOrderDeliveryTime(ctx context.Context, id uuid.UUID, deliveryTime time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmOrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"delivery_time": deliveryTime,
			"updated_at":    time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmOrderNotFound
	}

	return nil
}

// SetDeliveryCode stores the hashed pickup code and its expiry on the order.
func (repo *orderRepository) SetDeliveryCode(ctx context.Context, orderID uuid.UUID, codeHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"delivery_code_hash":       codeHash,
			"delivery_code_expires_at": expiresAt,
			"updated_at":               time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store delivery code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) withFarmOrders(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("FarmOrders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("FarmOrders.Items")
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	farmOrders := make([]*entity.FarmOrder, 0, len(data.FarmOrders))
	for _, farmOrderM := range data.FarmOrders {
		farmOrders = append(farmOrders, toFarmOrderDomain(farmOrderM))
	}

	return &entity.Order{
		ID:                    data.ID,
		ConsumerID:            data.ConsumerID,
		TotalAmount:           data.TotalAmount,
		CreatedAt:             data.CreatedAt,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		DeliveryCodeHash:      data.DeliveryCodeHash,
		DeliveryCodeExpiresAt: data.DeliveryCodeExpiresAt,
		FarmOrders:            farmOrders,
	}
}

// toFarmOrderDomain converts a GORM FarmOrderModel to a domain FarmOrder entity.
func toFarmOrderDomain(data *model.FarmOrderModel) *entity.FarmOrder {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          itemM.ID,
			FarmOrderID: itemM.FarmOrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
		})
	}

	return &entity.FarmOrder{
		ID:           data.ID,
		OrderID:      data.OrderID,
		FarmID:       data.FarmID,
		Status:       entity.FarmOrderStatus(data.Status),
		DeliveryTime: data.DeliveryTime,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity, with its farm orders and items, to GORM models.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	farmOrders := make([]*model.FarmOrderModel, 0, len(data.FarmOrders))
	for _, farmOrder := range data.FarmOrders {
		items := make([]*model.OrderItemModel, 0, len(farmOrder.Items))
		for _, item := range farmOrder.Items {
			items = append(items, &model.OrderItemModel{
				ID:          item.ID,
				FarmOrderID: farmOrder.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}

		farmOrders = append(farmOrders, &model.FarmOrderModel{
			ID:           farmOrder.ID,
			OrderID:      data.ID,
			FarmID:       farmOrder.FarmID,
			Status:       string(farmOrder.Status),
			DeliveryTime: farmOrder.DeliveryTime,
			CreatedAt:    farmOrder.CreatedAt,
			UpdatedAt:    farmOrder.UpdatedAt,
			Items:        items,
		})
	}

	return &model.OrderModel{
		ID:                    data.ID,
		ConsumerID:            data.ConsumerID,
		TotalAmount:           data.TotalAmount,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		DeliveryCodeHash:      data.DeliveryCodeHash,
		DeliveryCodeExpiresAt: data.DeliveryCodeExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.CreatedAt,
		FarmOrders:            farmOrders,
	}
}
