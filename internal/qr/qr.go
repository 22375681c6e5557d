// Package qr renders scannable pickup codes for placed orders. Codes
// are generated locally; nothing leaves the process.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// Size is the rendered PNG edge length in pixels.
const Size = 256

// PickupPayload is the text embedded in an order's code. Staff scanners
// key on the order id; total and date are there for a human
// cross-check.
func PickupPayload(o domain.Order) string {
	return fmt.Sprintf("ruxx:order:%s|total:%.2f|date:%s", o.ID, o.Total, o.Date)
}

// PickupCode renders the order's pickup code as PNG bytes with medium
// error recovery.
func PickupCode(o domain.Order) ([]byte, error) {
	png, err := qrcode.Encode(PickupPayload(o), qrcode.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("encode pickup code for %s: %w", o.ID, err)
	}
	return png, nil
}
