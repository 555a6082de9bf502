package rate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation result: one entry per offending
// field, collected before any domain entity is constructed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type currencyPairInput struct {
	FromCurrency string `validate:"required,len=3,alpha,uppercase"`
	ToCurrency   string `validate:"required,len=3,alpha,uppercase,nefield=FromCurrency"`
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidatePair checks the shape of an ordered currency pair.
func (v *Validator) ValidatePair(from string, to string) error {
	if fields := v.pairFieldErrors(from, to); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRate checks a full rate: pair shape plus ask > bid > 0.
func (v *Validator) ValidateRate(from string, to string, bid, ask decimal.Decimal) error {
	fields := v.pairFieldErrors(from, to)
	fields = append(fields, priceFieldErrors(bid, ask)...)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidatePrices checks only the bid/ask invariant, for updates where the pair
// is immutable.
func (v *Validator) ValidatePrices(bid, ask decimal.Decimal) error {
	if fields := priceFieldErrors(bid, ask); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (v *Validator) pairFieldErrors(from string, to string) []FieldError {
	err := v.validate.Struct(currencyPairInput{FromCurrency: from, ToCurrency: to})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "currencyPair", Message: err.Error()}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldName(fe.Field()), Message: pairMessage(fe.Tag())})
	}
	return fields
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func pairMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "len", "alpha", "uppercase":
		return "must be a 3-letter uppercase code"
	case "nefield":
		return "must differ from fromCurrency"
	default:
		return "is invalid"
	}
}

func priceFieldErrors(bid, ask decimal.Decimal) []FieldError {
	var fields []FieldError
	if !bid.IsPositive() {
		fields = append(fields, FieldError{Field: "bid", Message: "must be greater than zero"})
	}
	if ask.Cmp(bid) <= 0 {
		fields = append(fields, FieldError{Field: "ask", Message: "must be greater than bid"})
	}
	return fields
}
