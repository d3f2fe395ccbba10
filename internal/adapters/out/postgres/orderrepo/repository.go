package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db          *gorm.DB
	lockOnReads bool
}

// NewGormOrderRepository creates a new GORM order repository. Its reads take
// no row locks; use ForUpdate inside a transaction that writes back.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ForUpdate returns a repository whose Get, GetAll and GetByCustomer lock the
// order rows they return (SELECT ... FOR UPDATE) until the surrounding
// transaction ends. Two units of work loading the same order then run one
// after the other, and Update never overwrites a change it did not read.
func (r *GormOrderRepository) ForUpdate() *GormOrderRepository {
	return &GormOrderRepository{db: r.db, lockOnReads: true}
}

// Add saves a new order with its whole subtree.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := validateForStorage(aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ports.ErrOrderAlreadyExists
		}
		return tx.Create(&dto).Error
	})
	return err
}

// Update rewrites an existing order. Scalar columns are updated in place and
// the child rows are replaced, so removed shipments and containers go away.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := validateForStorage(aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("Items", "Shipments").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&ShipmentDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Items) > 0 {
			if err := tx.Create(&dto.Items).Error; err != nil {
				return err
			}
		}
		if len(dto.Shipments) > 0 {
			if err := tx.Create(&dto.Shipments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	if err := r.preload(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order sorted by id.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preload(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// GetByCustomer retrieves the orders of one customer sorted by id.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID int) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preload(ctx).Where("customer_number = ?", customerID).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// Remove deletes an order. Child rows are removed by ON DELETE CASCADE.
func (r *GormOrderRepository) Remove(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// MaxCustomerNumber returns the highest stored customer number, 0 when there
// is none. Importers seed their customer id generator from it.
func (r *GormOrderRepository) MaxCustomerNumber(ctx context.Context) (int, error) {
	var maxNumber *int
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("MAX(customer_number)").
		Scan(&maxNumber).Error; err != nil {
		return 0, err
	}
	if maxNumber == nil {
		return 0, nil
	}
	return *maxNumber, nil
}

func (r *GormOrderRepository) preload(ctx context.Context) *gorm.DB {
	bySeq := func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	}
	db := r.db.WithContext(ctx)
	if r.lockOnReads {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db.
		Preload("Items", bySeq).
		Preload("Shipments", bySeq).
		Preload("Shipments.Containers", bySeq).
		Preload("Shipments.Containers.Items", bySeq)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func validateForStorage(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == order.UnsetID {
		return errs.NewValueIsRequiredError("orderID")
	}
	return nil
}
