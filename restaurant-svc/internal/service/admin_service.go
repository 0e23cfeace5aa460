package service

import (
	"context"
	"sort"

	"rik-restaurant/restaurant-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type AdminService struct {
	users     UserRepository
	bookings  BookingRepository
	orders    OrderRepository
	inquiries InquiryRepository
	menu      MenuRepository
	carts     CartRepository
}

type AdminRepositories struct {
	Users     UserRepository
	Bookings  BookingRepository
	Orders    OrderRepository
	Inquiries InquiryRepository
	Menu      MenuRepository
	Carts     CartRepository
}

func NewAdminService(r AdminRepositories) *AdminService {
	return &AdminService{
		users:     r.Users,
		bookings:  r.Bookings,
		orders:    r.Orders,
		inquiries: r.Inquiries,
		menu:      r.Menu,
		carts:     r.Carts,
	}
}

// Summary rescans every collection on each call.
func (s *AdminService) Summary(ctx context.Context) (domain.AdminSummary, error) {
	var sum domain.AdminSummary

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return sum, err
	}
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return sum, err
	}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return sum, err
	}
	inquiries, err := s.inquiries.ListInquiries(ctx)
	if err != nil {
		return sum, err
	}
	items, err := s.menu.ListMenuItems(ctx)
	if err != nil {
		return sum, err
	}

	sum.TotalUsers = len(users)
	sum.TotalBookings = len(bookings)
	sum.TotalOrders = len(orders)
	sum.TotalMessages = len(inquiries)
	sum.TotalMenuItems = len(items)

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	sum.TotalRevenue = revenue

	for _, i := range inquiries {
		if i.Status == domain.InquiryUnread {
			sum.UnreadMessages++
		}
	}
	for _, item := range items {
		if item.Category == domain.CategorySpecials {
			sum.TodaysSpecials++
		}
	}
	return sum, nil
}

// ListCarts returns every stored cart, ordered by identity.
func (s *AdminService) ListCarts(ctx context.Context) ([]domain.CartOverview, error) {
	identities, err := s.carts.ListCartIdentities(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(identities)

	carts := make([]domain.CartOverview, 0, len(identities))
	for _, identity := range identities {
		lines, err := s.carts.GetCart(ctx, identity)
		if err != nil {
			return nil, err
		}
		if lines == nil {
			lines = []domain.CartLine{}
		}
		carts = append(carts, domain.CartOverview{
			Identity:   identity,
			Items:      lines,
			ItemCount:  ItemCount(lines),
			TotalValue: Subtotal(lines),
		})
	}
	return carts, nil
}

func (s *AdminService) ClearCart(ctx context.Context, identity string) error {
	return s.carts.DeleteCart(ctx, domain.IdentityOf(identity))
}
