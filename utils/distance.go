package utils

import (
	"fmt"
)

// PresentableDistance formats a leg distance for logs and summaries: meters
// under one kilometer, whole kilometers above.
func PresentableDistance(km float64) string {
	if km <= 0 {
		return ""
	}
	return ternary(km < 1, fmt.Sprintf("%d m", int(km*1000)), fmt.Sprintf("%.0f km", km))
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
