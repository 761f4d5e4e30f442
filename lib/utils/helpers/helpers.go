package helpers

import (
	"context"
	"math"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// Round2 округляет до 2 знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
