package storage

import (
	"context"
	"strings"

	"rik-restaurant/restaurant-svc/internal/domain"
	"rik-restaurant/restaurant-svc/internal/service"
)

const (
	KeyUsers      = "registeredUsers"
	KeyMenuItems  = "menuItems"
	KeyBookings   = "bookedTables"
	KeyOrders     = "orders"
	KeyInquiries  = "contactInquiries"
	CartKeyPrefix = "cart_"
)

func CartKey(identity string) string {
	return CartKeyPrefix + identity
}

// Repository maps each collection onto one document in a Store.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListMenuItems falls back to the built-in menu until an admin edit persists
// one.
func (r *Repository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items, ok, err := loadCollection[domain.MenuItem](ctx, r.store, KeyMenuItems)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedMenu(), nil
	}
	return items, nil
}

func (r *Repository) SaveMenuItems(ctx context.Context, items []domain.MenuItem) error {
	return saveCollection(ctx, r.store, KeyMenuItems, items)
}

func (r *Repository) GetCart(ctx context.Context, identity string) ([]domain.CartLine, error) {
	lines, _, err := loadCollection[domain.CartLine](ctx, r.store, CartKey(identity))
	return lines, err
}

func (r *Repository) SaveCart(ctx context.Context, identity string, lines []domain.CartLine) error {
	return saveCollection(ctx, r.store, CartKey(identity), lines)
}

func (r *Repository) DeleteCart(ctx context.Context, identity string) error {
	return r.store.Delete(ctx, CartKey(identity))
}

func (r *Repository) ListCartIdentities(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, CartKeyPrefix)
	if err != nil {
		return nil, err
	}
	identities := make([]string, 0, len(keys))
	for _, k := range keys {
		identities = append(identities, strings.TrimPrefix(k, CartKeyPrefix))
	}
	return identities, nil
}

func (r *Repository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, _, err := loadCollection[domain.Booking](ctx, r.store, KeyBookings)
	return bookings, err
}

func (r *Repository) SaveBookings(ctx context.Context, bookings []domain.Booking) error {
	return saveCollection(ctx, r.store, KeyBookings, bookings)
}

func (r *Repository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, _, err := loadCollection[domain.Order](ctx, r.store, KeyOrders)
	return orders, err
}

func (r *Repository) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return saveCollection(ctx, r.store, KeyOrders, orders)
}

func (r *Repository) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, _, err := loadCollection[domain.Inquiry](ctx, r.store, KeyInquiries)
	return inquiries, err
}

func (r *Repository) SaveInquiries(ctx context.Context, inquiries []domain.Inquiry) error {
	return saveCollection(ctx, r.store, KeyInquiries, inquiries)
}

func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, _, err := loadCollection[domain.User](ctx, r.store, KeyUsers)
	return users, err
}

func (r *Repository) SaveUsers(ctx context.Context, users []domain.User) error {
	return saveCollection(ctx, r.store, KeyUsers, users)
}

var (
	_ service.MenuRepository    = (*Repository)(nil)
	_ service.CartRepository    = (*Repository)(nil)
	_ service.BookingRepository = (*Repository)(nil)
	_ service.OrderRepository   = (*Repository)(nil)
	_ service.InquiryRepository = (*Repository)(nil)
	_ service.UserRepository    = (*Repository)(nil)
)
