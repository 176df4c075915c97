package request

import (
	"context"
	"fmt"
	"strings"

	"go-leave/internal/shared/counter"
)

func numberPrefix(kind Kind) string {
	if kind == KindWFH {
		return "WFH"
	}
	return "LV"
}

// NextNumber allocates LV-2026-000042 style numbers from a per-year
// sequence. Call it with a counter bound to the submitting transaction.
func NextNumber(ctx context.Context, counters counter.Repository, kind Kind, year int) (string, error) {
	counterType := fmt.Sprintf("%s_request:%d", strings.ToLower(string(kind)), year)
	next, err := counters.GetNextValue(ctx, counterType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%06d", numberPrefix(kind), year, next), nil
}
