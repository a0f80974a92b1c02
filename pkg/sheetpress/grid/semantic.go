package grid

import (
	"regexp"
	"strconv"
	"strings"
)

// Inferred storage-level data types.
const (
	InferredEmpty    = "empty"
	InferredText     = "text"
	InferredNumeric  = "numeric"
	InferredBoolean  = "boolean"
	InferredDatetime = "datetime"
	InferredError    = "error"
	InferredEmail    = "email"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func isNumericString(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isIntegerString(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// NumberFormatString returns the cell's raw number format code, falling
// back to "General" when unset.
func NumberFormatString(rec CellRecord) string {
	if rec.NumberFormat == "" {
		return "General"
	}
	return rec.NumberFormat
}

// InferType classifies a cell's value at the storage level.
func InferType(rec CellRecord) string {
	if rec.Empty || rec.Value == "" {
		return InferredEmpty
	}
	if emailRe.MatchString(rec.Value) {
		return InferredEmail
	}
	switch rec.Type {
	case TypeText:
		return InferredText
	case TypeBool:
		return InferredBoolean
	case TypeDate:
		return InferredDatetime
	case TypeError:
		return InferredError
	case TypeNumber:
		if IsDateFormatCode(NumberFormatString(rec)) {
			return InferredDatetime
		}
		return InferredNumeric
	case TypeFormula:
		// Formula cells carry their cached result; classify by its shape.
		if isNumericString(rec.Value) {
			return InferredNumeric
		}
		return InferredText
	default:
		if isNumericString(rec.Value) {
			return InferredNumeric
		}
		return InferredText
	}
}

// Number format categories.
const (
	CategoryNotApplicable = "not_applicable"
	CategoryGeneral       = "general"
	CategoryTextFormat    = "text_format"
	CategoryCurrency      = "currency"
	CategoryPercentage    = "percentage"
	CategoryScientific    = "scientific"
	CategoryFraction      = "fraction"
	CategoryDatetime      = "datetime_custom"
	CategoryDate          = "date_custom"
	CategoryTime          = "time_custom"
	CategoryInteger       = "integer"
	CategoryFloat         = "float"
	CategoryOtherNumeric  = "other_numeric"
	CategoryOtherDate     = "other_date"
)

var currencySymbols = []string{"$", "€", "£", "¥"}

var integerFormats = map[string]bool{"0": true, "#,##0": true}

var floatFormats = map[string]bool{
	"0.00": true, "#,##0.00": true, "0.0": true, "#,##0.0": true,
}

// CategorizeNumberFormat classifies a number format code in the context of
// the cell it formats.
func CategorizeNumberFormat(code string, rec CellRecord) string {
	inferred := InferType(rec)
	if inferred != InferredNumeric && inferred != InferredDatetime {
		return CategoryNotApplicable
	}

	if code == "" || strings.EqualFold(code, "general") {
		if inferred == InferredDatetime {
			return "datetime_general"
		}
		return CategoryGeneral
	}
	if code == "@" || strings.EqualFold(code, "text") {
		return CategoryTextFormat
	}
	for _, sym := range currencySymbols {
		if strings.Contains(code, sym) {
			return CategoryCurrency
		}
	}
	if strings.Contains(code, "%") {
		return CategoryPercentage
	}
	upper := strings.ToUpper(code)
	if strings.Contains(upper, "E+") || strings.Contains(upper, "E-") {
		return CategoryScientific
	}
	if strings.Contains(code, "#") && strings.Contains(code, "/") && strings.Contains(code, "?") {
		return CategoryFraction
	}

	lower := strings.ToLower(code)
	isDate := false
	for _, kw := range []string{"yyyy", "yy", "mmmm", "mmm", "mm", "dddd", "ddd", "dd", "d"} {
		if strings.Contains(lower, kw) {
			isDate = true
			break
		}
	}
	isTime := false
	for _, kw := range []string{"hh", "h", "ss", "s", "am/pm", "a/p"} {
		if strings.Contains(lower, kw) {
			isTime = true
			break
		}
	}
	if strings.Contains(code, ":") {
		stripped := strings.NewReplacer("0", "", "#", "", ",", "", ".", "").Replace(code)
		if strings.Contains(stripped, ":") {
			isTime = true
		}
	}
	switch {
	case isDate && isTime:
		return CategoryDatetime
	case isDate:
		return CategoryDate
	case isTime:
		return CategoryTime
	}

	if inferred == InferredNumeric {
		if integerFormats[code] {
			return CategoryInteger
		}
		if floatFormats[code] {
			return CategoryFloat
		}
		return CategoryOtherNumeric
	}
	return CategoryOtherDate
}

// Semantic types beyond the storage-level set.
const (
	SemanticInteger    = "integer"
	SemanticFloat      = "float"
	SemanticPercentage = "percentage"
	SemanticCurrency   = "currency"
	SemanticDate       = "date"
	SemanticYear       = "year"
	SemanticTime       = "time"
	SemanticScientific = "scientific_notation"
)

// SemanticType infers a higher-level semantic type from the cell's value
// and number format.
func SemanticType(rec CellRecord) string {
	inferred := InferType(rec)
	if inferred == InferredEmail {
		return InferredEmail
	}

	code := NumberFormatString(rec)
	category := CategorizeNumberFormat(code, rec)
	lower := strings.ToLower(code)

	switch category {
	case CategoryPercentage:
		return SemanticPercentage
	case CategoryCurrency:
		return SemanticCurrency
	case CategoryDate, CategoryDatetime, "datetime_general", CategoryOtherDate:
		if strings.Contains(lower, "yy") && !strings.ContainsAny(lower, "md") {
			return SemanticYear
		}
		return SemanticDate
	case CategoryTime:
		return SemanticTime
	case CategoryScientific:
		return SemanticScientific
	}

	if inferred == InferredNumeric {
		if isIntegerString(rec.Value) || category == CategoryInteger {
			return SemanticInteger
		}
		if isNumericString(rec.Value) && strings.ContainsAny(rec.Value, ".eE") || category == CategoryFloat {
			return SemanticFloat
		}
		return InferredNumeric
	}
	return inferred
}

// IsNumericFamily reports whether a semantic type belongs to the numeric
// family used for numeric range clustering.
func IsNumericFamily(semanticType string) bool {
	switch semanticType {
	case SemanticInteger, SemanticFloat, InferredNumeric:
		return true
	}
	return false
}
