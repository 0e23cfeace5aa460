package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	publisher EventPublisher
}

func NewOrderService(orders OrderRepository, carts CartRepository, publisher EventPublisher) *OrderService {
	return &OrderService{orders: orders, carts: carts, publisher: publisher}
}

// PlaceOrder snapshots the identity's cart into a pending order and then
// clears the cart. The two writes are not atomic: if clearing fails the order
// stays recorded and the error is returned.
func (s *OrderService) PlaceOrder(ctx context.Context, identity string) (domain.Order, error) {
	identity = domain.IdentityOf(identity)
	lines, err := s.carts.GetCart(ctx, identity)
	if err != nil {
		return domain.Order{}, err
	}
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	snapshot := make([]domain.CartLine, len(lines))
	copy(snapshot, lines)

	order := domain.Order{
		ID:        newID(),
		UserEmail: identity,
		Items:     snapshot,
		Subtotal:  Subtotal(snapshot),
		Tax:       Tax(snapshot),
		Total:     Total(snapshot),
		Date:      time.Now().UTC(),
		Status:    domain.OrderPending,
	}

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.orders.SaveOrders(ctx, append(orders, order)); err != nil {
		return domain.Order{}, fmt.Errorf("save orders: %w", err)
	}

	if err := s.carts.DeleteCart(ctx, identity); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Str("identity", identity).Msg("order recorded but cart not cleared")
		return order, fmt.Errorf("clear cart after order %s: %w", order.ID, err)
	}

	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventOrderPlaced,
		Identity: identity,
		EntityID: order.ID,
		Summary:  fmt.Sprintf("%d items", ItemCount(snapshot)),
		Amount:   order.Total.StringFixed(2),
	})
	return order, nil
}

// SetStatus allows any transition between the known statuses.
func (s *OrderService) SetStatus(ctx context.Context, id, status string) error {
	if !domain.IsOrderStatus(status) {
		return invalid("status", "must be one of pending, processing, completed, cancelled")
	}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	var updated *domain.Order
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			updated = &orders[i]
		}
	}
	if updated == nil {
		return nil
	}
	if err := s.orders.SaveOrders(ctx, orders); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventOrderStatusChanged,
		Identity: updated.UserEmail,
		EntityID: id,
		Summary:  status,
	})
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderService) ListForUser(ctx context.Context, identity string) ([]domain.Order, error) {
	identity = domain.IdentityOf(identity)
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	mine := []domain.Order{}
	for _, o := range orders {
		if o.UserEmail == identity {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Date.After(mine[j].Date) })
	return mine, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}
