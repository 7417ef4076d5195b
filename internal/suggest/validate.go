package suggest

import (
	"strconv"

	"lister-backend/internal/model"
)

// dateFormatLengths maps a declared date format to the exact value length
// it demands.
var dateFormatLengths = map[string]int{
	"YYYY":     4,
	"YYYYMM":   6,
	"YYYYMMDD": 8,
}

// ValidateAspectValue checks a candidate value against the aspect's
// declared constraints. An empty value is valid here; required-ness is
// enforced elsewhere.
func ValidateAspectValue(value string, aspect model.Aspect) bool {
	if value == "" {
		return true
	}

	if aspect.MaxLength > 0 && len(value) > aspect.MaxLength {
		return false
	}

	switch aspect.DataType {
	case model.DataTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return false
		}
	case model.DataTypeDate:
		if want, ok := dateFormatLengths[aspect.Format]; ok && len(value) != want {
			return false
		}
		// Dates are digit strings at every granularity.
		if _, err := strconv.Atoi(value); err != nil {
			return false
		}
	}
	return true
}

// FormatAspectValue reshapes a raw value to the aspect's declared date
// granularity or numeric format. Unrecognized combinations come back
// unchanged.
func FormatAspectValue(value, dataType, format string) string {
	switch dataType {
	case model.DataTypeDate:
		if n, ok := dateFormatLengths[format]; ok && len(value) > n {
			return value[:n]
		}
	case model.DataTypeNumber:
		switch format {
		case "int32":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				return strconv.Itoa(int(f))
			}
		case "double":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				return strconv.FormatFloat(f, 'f', -1, 64)
			}
		}
	}
	return value
}
