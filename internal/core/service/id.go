package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newID returns a 24-character random hex identifier.
func newID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// generateOrderNumber returns a unique order number in the format ORD-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("ORD-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ORD-%08X", b)
}
