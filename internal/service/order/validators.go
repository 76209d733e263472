package order

import (
	"strings"
	"time"
)

// Withdrawals are only allowed within [08:00, 18:00) local time.
const (
	withdrawalOpensAt  = 8
	withdrawalClosesAt = 18
)

func withinWithdrawalWindow(now time.Time) bool {
	return now.Hour() >= withdrawalOpensAt && now.Hour() < withdrawalClosesAt
}

func isValidProduct(product string) bool {
	return strings.TrimSpace(product) != ""
}

func isValidID(id int64) bool {
	return id > 0
}
