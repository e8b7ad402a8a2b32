package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateDelivery(ctx context.Context, d entities.DeliveryInformation) (int64, error) {
	query, args := r.qb.Insert("deliveries").
		Columns("name", "phone", "email", "address", "province", "shipping_message", "shipping_fee").
		Values(d.Name, d.Phone, d.Email, d.Address, d.Province, nullString(d.ShippingMessage), d.ShippingFee).
		Suffix("RETURNING delivery_id").
		MustSql()

	var deliveryID int64
	if err := r.getContext(ctx, &deliveryID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create delivery: %w", err)
	}
	return deliveryID, nil
}

// CreateOrder inserts the order and assigns its public tracking code, which
// embeds the generated order id. Both statements run on the caller's
// transaction when one is present in ctx.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("delivery_id", "total_before_vat", "total_after_vat", "vat", "status", "payment_method").
		Values(o.DeliveryID, o.TotalBeforeVAT, o.TotalAfterVAT, o.VAT, string(o.Status), string(o.PaymentMethod)).
		Suffix("RETURNING order_id, created_at").
		MustSql()

	var row Order
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	o.OrderID = row.OrderID
	o.CreatedAt = row.CreatedAt
	o.TrackingCode = entities.NewTrackingCode(o.OrderID)

	query, args = r.qb.Update("orders").
		Set("tracking_code", o.TrackingCode).
		Where(sq.Eq{"order_id": o.OrderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to set tracking code: %w", err)
	}
	return o, nil
}

func (r *postgresRepo) CreateOrderLines(ctx context.Context, lines []entities.OrderLine) ([]int64, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "product_id", "title", "status", "quantity",
			"unit_price", "total_fee", "rush_order", "delivery_time", "instructions").
		Suffix("RETURNING odline_id")

	for _, l := range lines {
		q = q.Values(
			l.OrderID,
			l.ProductID,
			l.Title,
			string(l.Status),
			l.Quantity,
			l.UnitPrice,
			l.TotalFee,
			l.RushOrder,
			nullString(l.DeliveryTime),
			nullString(l.Instructions),
		)
	}

	query, args := q.MustSql()
	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create order lines: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) AddTrackingEvent(ctx context.Context, orderID int64, e entities.TrackingEvent) error {
	query, args := r.qb.Insert("tracking_events").
		Columns("order_id", "status", "description", "location").
		Values(orderID, string(e.Status), e.Description, nullString(e.Location)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add tracking event: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderTracking(ctx context.Context, orderID int64) (entities.OrderTrackingInfo, error) {
	query, args := r.qb.Select(
		"order_id", "delivery_id", "tracking_code", "total_before_vat",
		"total_after_vat", "vat", "status", "payment_method", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderTrackingInfo{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.OrderTrackingInfo{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"delivery_id", "name", "phone", "email", "address",
		"province", "shipping_message", "shipping_fee").
		From("deliveries").
		Where(sq.Eq{"delivery_id": order.DeliveryID}).
		MustSql()

	var delivery Delivery
	if err := r.getContext(ctx, &delivery, query, args...); err != nil {
		return entities.OrderTrackingInfo{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	query, args = r.qb.Select(
		"odline_id", "order_id", "product_id", "title", "status", "quantity",
		"unit_price", "total_fee", "rush_order", "delivery_time", "instructions").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("odline_id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.OrderTrackingInfo{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	query, args = r.qb.Select("event_id", "order_id", "status", "description", "location", "created_at").
		From("tracking_events").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("event_id").
		MustSql()

	var events []TrackingEvent
	if err := r.selectContext(ctx, &events, query, args...); err != nil {
		return entities.OrderTrackingInfo{}, fmt.Errorf("failed to get tracking events: %w", err)
	}

	info := entities.OrderTrackingInfo{
		OrderID:         order.OrderID,
		TrackingCode:    nullStringToString(order.TrackingCode),
		Status:          entities.OrderStatus(order.Status),
		OrderDate:       order.CreatedAt,
		TotalAmount:     order.TotalAfterVAT,
		PaymentMethod:   entities.PaymentMethod(order.PaymentMethod),
		DeliveryAddress: delivery.Address + ", " + delivery.Province,
	}

	info.Items = make([]entities.TrackedItem, 0, len(lines))
	for _, l := range lines {
		info.Items = append(info.Items, entities.TrackedItem{
			ProductID: l.ProductID,
			Title:     l.Title,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
			RushOrder: l.RushOrder,
		})
	}

	info.Events = make([]entities.TrackingEvent, 0, len(events))
	for _, e := range events {
		info.Events = append(info.Events, TrackingEventToEntity(e))
	}

	return info, nil
}

// LatestOrderIDs returns ids of the most recently placed orders, newest first.
func (r *postgresRepo) LatestOrderIDs(ctx context.Context, count int) ([]int64, error) {
	query, args := r.qb.Select("order_id").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select latest orders: %w", err)
	}
	return ids, nil
}

// CancelOrder flips a pending order (and its pending lines) to cancelled.
// The WHERE guard makes pending -> cancelled the only possible transition;
// a concurrent approval or a repeated cancel sees zero affected rows and
// gets ErrOrderNotCancellable.
func (r *postgresRepo) CancelOrder(ctx context.Context, orderID int64) error {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelled)).
		Where(sq.Eq{"order_id": orderID, "status": string(entities.StatusPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotCancellable
	}

	query, args = r.qb.Update("order_lines").
		Set("status", string(entities.StatusCancelled)).
		Where(sq.Eq{"order_id": orderID, "status": string(entities.StatusPending)}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to cancel order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
