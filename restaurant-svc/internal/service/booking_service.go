package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"
)

const (
	FirstTable    = 1
	LastTable     = 10
	MaxGuests     = 8
	DefaultGuests = 2
	dateLayout    = "2006-01-02"
)

var TimeSlots = []string{"12:00 PM", "1:00 PM", "2:00 PM", "6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM"}

// Clock supplies the current time; tests pin it.
type Clock func() time.Time

// FindAvailableTable returns the lowest table in the pool with no booking for
// the exact date and time.
func FindAvailableTable(date, slot string, bookings []domain.Booking) (int, bool) {
	taken := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if b.Date == date && b.Time == slot {
			taken[b.TableNumber] = true
		}
	}
	for table := FirstTable; table <= LastTable; table++ {
		if !taken[table] {
			return table, true
		}
	}
	return 0, false
}

type BookingService struct {
	repo      BookingRepository
	publisher EventPublisher
	now       Clock
}

func NewBookingService(repo BookingRepository, publisher EventPublisher, now Clock) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{repo: repo, publisher: publisher, now: now}
}

// Validate applies the booking form rules. Dates are compared by calendar
// day in the clock's location.
func (s *BookingService) Validate(draft domain.BookingDraft) error {
	if blank(draft.Name) {
		return invalid("name", "is required")
	}
	if blank(draft.Email) {
		return invalid("email", "is required")
	}
	if !validEmail(draft.Email) {
		return invalid("email", "please enter a valid email")
	}
	if blank(draft.Date) {
		return invalid("date", "is required")
	}
	now := s.now()
	day, err := time.ParseInLocation(dateLayout, draft.Date, now.Location())
	if err != nil {
		return invalid("date", "must be formatted as YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return invalid("date", "cannot be in the past")
	}
	if blank(draft.Time) {
		return invalid("time", "is required")
	}
	if !isTimeSlot(draft.Time) {
		return invalid("time", "must be one of "+strings.Join(TimeSlots, ", "))
	}
	if draft.Guests < 0 || draft.Guests > MaxGuests {
		return invalid("guests", fmt.Sprintf("must be between 1 and %d", MaxGuests))
	}
	return nil
}

func isTimeSlot(slot string) bool {
	for _, known := range TimeSlots {
		if known == slot {
			return true
		}
	}
	return false
}

// CheckAvailability validates the draft and reports the table it would get.
func (s *BookingService) CheckAvailability(ctx context.Context, draft domain.BookingDraft) (int, error) {
	if err := s.Validate(draft); err != nil {
		return 0, err
	}
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return 0, err
	}
	table, ok := FindAvailableTable(draft.Date, draft.Time, bookings)
	if !ok {
		return 0, ErrNoTableAvailable
	}
	return table, nil
}

// ConfirmBooking stores a confirmed booking for the table. The slot is checked
// again against the stored bookings, but nothing stops two writers racing
// between this read and the write. The event goes to the signed-in caller;
// guests are reached through the email on the form.
func (s *BookingService) ConfirmBooking(ctx context.Context, identity string, draft domain.BookingDraft, tableNumber int) (domain.Booking, error) {
	if err := s.Validate(draft); err != nil {
		return domain.Booking{}, err
	}
	if tableNumber < FirstTable || tableNumber > LastTable {
		return domain.Booking{}, invalid("tableNumber", fmt.Sprintf("must be between %d and %d", FirstTable, LastTable))
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, b := range bookings {
		if b.TableNumber == tableNumber && b.Date == draft.Date && b.Time == draft.Time {
			return domain.Booking{}, ErrTableTaken
		}
	}

	guests := draft.Guests
	if guests == 0 {
		guests = DefaultGuests
	}
	booking := domain.Booking{
		ID:          newID(),
		Name:        strings.TrimSpace(draft.Name),
		Email:       strings.TrimSpace(draft.Email),
		Phone:       strings.TrimSpace(draft.Phone),
		Date:        draft.Date,
		Time:        draft.Time,
		Guests:      guests,
		TableNumber: tableNumber,
		Status:      domain.BookingConfirmed,
		BookingDate: s.now().UTC(),
	}
	if err := s.repo.SaveBookings(ctx, append(bookings, booking)); err != nil {
		return domain.Booking{}, fmt.Errorf("save bookings: %w", err)
	}

	owner := domain.IdentityOf(identity)
	if owner == domain.GuestIdentity {
		owner = booking.Email
	}
	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventBookingConfirmed,
		Identity: owner,
		EntityID: booking.ID,
		Summary:  fmt.Sprintf("table %d on %s at %s for %d", booking.TableNumber, booking.Date, booking.Time, booking.Guests),
	})
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func (s *BookingService) Get(ctx context.Context, id string) (domain.Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, ErrBookingNotFound
}

func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Booking, 0, len(bookings))
	var removed *domain.Booking
	for i := range bookings {
		if bookings[i].ID == id {
			removed = &bookings[i]
			continue
		}
		kept = append(kept, bookings[i])
	}
	if err := s.repo.SaveBookings(ctx, kept); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	if removed != nil {
		notify(ctx, s.publisher, domain.Event{
			Type:     domain.EventBookingDeleted,
			Identity: removed.Email,
			EntityID: removed.ID,
		})
	}
	return nil
}
