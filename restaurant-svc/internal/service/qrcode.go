package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	QRKindOrder   = "orders"
	QRKindBooking = "bookings"
)

// DefaultQRGenerator encodes a receipt link such as <base>/orders/<id>.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(kind, id string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(g.BaseURL, "/"), kind, id)
}

func (g DefaultQRGenerator) Generate(kind, id string) ([]byte, error) {
	return qrcode.Encode(g.Link(kind, id), qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
