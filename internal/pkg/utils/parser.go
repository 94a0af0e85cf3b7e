package utils

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// CoerceFloat converts loosely-typed dosage input to a number. Clients send
// these fields as strings or numbers interchangeably; anything unparseable
// coerces to 0 rather than failing the request.
func CoerceFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func CoerceInt(value interface{}) int {
	return int(CoerceFloat(value))
}
