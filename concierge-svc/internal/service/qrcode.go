package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(phoneNumber string) ([]byte, error)
}

// DefaultQRGenerator encodes a tel: link so guests can dial the concierge line from their room.
type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(phoneNumber string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode("tel:"+phoneNumber, qrcode.Medium, size)
}
