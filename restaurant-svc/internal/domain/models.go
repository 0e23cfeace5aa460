package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GuestIdentity owns the cart and inquiries of unauthenticated visitors.
const GuestIdentity = "guest"

// IdentityOf returns the partition key for an email, falling back to guest.
func IdentityOf(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return GuestIdentity
	}
	return email
}

type User struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}

const (
	CategoryAppetizers = "appetizers"
	CategoryMainCourse = "maincourse"
	CategoryDesserts   = "desserts"
	CategoryDrinks     = "drinks"
	CategorySpecials   = "specials"
)

var Categories = []string{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryDesserts,
	CategoryDrinks,
	CategorySpecials,
}

func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// CartLine is a menu item plus the quantity a customer wants.
type CartLine struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"addedAt"`
}

func NewCartLine(item MenuItem, addedAt time.Time) CartLine {
	return CartLine{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Rating:      item.Rating,
		Quantity:    1,
		AddedAt:     addedAt,
	}
}

// CartSummary is a cart with its derived quantities and money totals.
type CartSummary struct {
	Identity  string          `json:"identity"`
	Lines     []CartLine      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

const BookingConfirmed = "confirmed"

type Booking struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Guests      int       `json:"guests"`
	TableNumber int       `json:"tableNumber"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"bookingDate"`
}

// BookingDraft is what a customer submits before a table is assigned.
type BookingDraft struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

func IsOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        string          `json:"id"`
	UserEmail string          `json:"userEmail"`
	Items     []CartLine      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
}
