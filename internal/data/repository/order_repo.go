package repository

import (
	"context"
	"fmt"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// ListByParticipant returns orders where the user is either side.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByBusinessUser(ctx context.Context, businessUserID uuid.UUID) (int64, error)
	CountByBusinessUserAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, offer_id, business_user_id, customer_user_id, title, offer_type,
	delivery_time_in_days, revisions, price, features, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.OfferID,
		&order.BusinessUserID,
		&order.CustomerUserID,
		&order.Title,
		&order.OfferType,
		&order.DeliveryTimeInDays,
		&order.Revisions,
		&order.Price,
		&order.Features,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, offer_id, business_user_id, customer_user_id, title, offer_type,
		                    delivery_time_in_days, revisions, price, features, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OfferID,
		order.BusinessUserID,
		order.CustomerUserID,
		order.Title,
		order.OfferType,
		order.DeliveryTimeInDays,
		order.Revisions,
		order.Price,
		order.Features,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_user_id", order.CustomerUserID.String()),
		)
		return fmt.Errorf("create order for customer %s: %w", order.CustomerUserID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE business_user_id = $1 OR customer_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.Status,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("update order %s: %w", order.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", order.ID.String())
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func (r *orderRepository) CountByBusinessUser(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE business_user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, businessUserID).Scan(&count); err != nil {
		r.log.Error("Failed to count orders",
			zap.Error(err),
			zap.String("business_user_id", businessUserID.String()),
		)
		return 0, fmt.Errorf("count orders for business user %s: %w", businessUserID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) CountByBusinessUserAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE business_user_id = $1 AND status = $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, businessUserID, status).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by status",
			zap.Error(err),
			zap.String("business_user_id", businessUserID.String()),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count %s orders for business user %s: %w", status, businessUserID.String(), err)
	}

	return count, nil
}
