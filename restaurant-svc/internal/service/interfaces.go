package service

import (
	"context"

	"rik-restaurant/restaurant-svc/internal/domain"
)

// Every repository reads or writes a whole collection; there is no
// per-entity addressing and the last writer wins.

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	SaveMenuItems(ctx context.Context, items []domain.MenuItem) error
}

type CartRepository interface {
	GetCart(ctx context.Context, identity string) ([]domain.CartLine, error)
	SaveCart(ctx context.Context, identity string, lines []domain.CartLine) error
	DeleteCart(ctx context.Context, identity string) error
	ListCartIdentities(ctx context.Context) ([]string, error)
}

type BookingRepository interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	SaveBookings(ctx context.Context, bookings []domain.Booking) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
}

type InquiryRepository interface {
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)
	SaveInquiries(ctx context.Context, inquiries []domain.Inquiry) error
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(kind, id string) ([]byte, error)
}

type CatalogServiceInterface interface {
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	ListSpecials(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (domain.MenuItem, error)
	AddItem(ctx context.Context, draft domain.MenuItem) (domain.MenuItem, error)
	RemoveItem(ctx context.Context, id string) error
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, identity string) ([]domain.CartLine, error)
	Summary(ctx context.Context, identity string) (domain.CartSummary, error)
	AddToCart(ctx context.Context, identity string, item domain.MenuItem) ([]domain.CartLine, error)
	SetQuantity(ctx context.Context, identity, itemID string, qty int) error
	RemoveLine(ctx context.Context, identity, itemID string) error
	Clear(ctx context.Context, identity string) error
}

type BookingServiceInterface interface {
	CheckAvailability(ctx context.Context, draft domain.BookingDraft) (int, error)
	ConfirmBooking(ctx context.Context, identity string, draft domain.BookingDraft, tableNumber int) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, id string) (domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, identity string) (domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListForUser(ctx context.Context, identity string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
}

type MessageServiceInterface interface {
	Submit(ctx context.Context, identity string, draft domain.InquiryDraft) (domain.Inquiry, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Reply(ctx context.Context, id, text string) error
	Remove(ctx context.Context, id string) error
	ListForUser(ctx context.Context, identity string) ([]domain.Inquiry, error)
	ListAll(ctx context.Context) ([]domain.Inquiry, error)
}

type UserServiceInterface interface {
	Register(ctx context.Context, draft domain.User) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, email string) error
}

type AdminServiceInterface interface {
	Summary(ctx context.Context) (domain.AdminSummary, error)
	ListCarts(ctx context.Context) ([]domain.CartOverview, error)
	ClearCart(ctx context.Context, identity string) error
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ CartServiceInterface    = (*CartService)(nil)
	_ BookingServiceInterface = (*BookingService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ MessageServiceInterface = (*MessageService)(nil)
	_ UserServiceInterface    = (*UserService)(nil)
	_ AdminServiceInterface   = (*AdminService)(nil)
)
