package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate       = errors.New("invalid date format")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCustomerID = errors.New("invalid customerID")
	ErrEmptyCategory     = errors.New("empty category")
)

// DateLayouts são tentados em ordem; o primeiro que interpretar o valor vence
var DateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"20060102",
}

// ParseDate converte o valor bruto de uma coluna de data em um dia de calendário
func ParseDate(value any) (Date, error) {
	switch v := value.(type) {
	case Date:
		return v, nil
	case time.Time:
		return DateOf(v), nil
	case *time.Time:
		if v != nil {
			return DateOf(*v), nil
		}
	case string:
		raw := strings.TrimSpace(v)
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return DateOf(t), nil
			}
		}
		return Date{}, fmt.Errorf("%w '%s'", ErrInvalidDate, v)
	}

	return Date{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
}

// ParseAmount converte o valor bruto em decimal. O sinal não é verificado aqui.
func ParseAmount(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		amount, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w '%s'", ErrInvalidAmount, v)
		}
		return amount, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("%w '%v'", ErrInvalidAmount, v)
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		return ParseAmount(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	}

	return decimal.Zero, fmt.Errorf("%w '%v'", ErrInvalidAmount, value)
}

// ParseCustomerID aceita inteiros e números com parte fracionária zero (ex.: "3.0")
func ParseCustomerID(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case float64:
		return integralFloat(v, value)
	case float32:
		return integralFloat(float64(v), value)
	case decimal.Decimal:
		if v.IsInteger() {
			return v.IntPart(), nil
		}
	case string:
		raw := strings.TrimSpace(v)
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return id, nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return integralFloat(f, value)
		}
	}

	return 0, fmt.Errorf("%w '%v'", ErrInvalidCustomerID, value)
}

func integralFloat(f float64, original any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, fmt.Errorf("%w '%v'", ErrInvalidCustomerID, original)
	}
	return int64(f), nil
}

// ParseCategory normaliza a categoria removendo espaços nas pontas
func ParseCategory(value any) (string, error) {
	var category string
	if s, ok := value.(string); ok {
		category = strings.TrimSpace(s)
	} else if value != nil {
		category = strings.TrimSpace(fmt.Sprint(value))
	}

	if category == "" {
		return "", ErrEmptyCategory
	}

	return category, nil
}
