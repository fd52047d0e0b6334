// Package service holds the business rules: LR booking and tracking, invoice
// generation with its billing side effects, and the financial reports.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func newID() string {
	return uuid.NewString()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
