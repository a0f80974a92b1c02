package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name string
		rec  CellRecord
		want string
	}{
		{"empty", CellRecord{Empty: true, Type: TypeEmpty}, InferredEmpty},
		{"text", CellRecord{Value: "hello", Type: TypeText}, InferredText},
		{"number", CellRecord{Value: "42", Type: TypeNumber}, InferredNumeric},
		{"bool", CellRecord{Value: "TRUE", Type: TypeBool}, InferredBoolean},
		{"date storage", CellRecord{Value: "2024-01-01", Type: TypeDate}, InferredDatetime},
		{"error", CellRecord{Value: "#DIV/0!", Type: TypeError}, InferredError},
		{"email wins over text", CellRecord{Value: "a.b+c@example.org", Type: TypeText}, InferredEmail},
		{"number with date format", CellRecord{Value: "45321", Type: TypeNumber, NumberFormat: "yyyy-mm-dd"}, InferredDatetime},
		{"formula numeric result", CellRecord{Value: "3.5", Type: TypeFormula}, InferredNumeric},
		{"formula text result", CellRecord{Value: "total", Type: TypeFormula}, InferredText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferType(tt.rec))
		})
	}
}

func TestCategorizeNumberFormat(t *testing.T) {
	num := func(format string) CellRecord {
		return CellRecord{Value: "1", Type: TypeNumber, NumberFormat: format}
	}
	tests := []struct {
		code string
		want string
	}{
		{"General", CategoryGeneral},
		{"", CategoryGeneral},
		{"$#,##0.00", CategoryCurrency},
		{"0%", CategoryPercentage},
		{"0.00E+00", CategoryScientific},
		{"# ?/?", CategoryFraction},
		{"0", CategoryInteger},
		{"#,##0", CategoryInteger},
		{"0.00", CategoryFloat},
		{"#,##0.0", CategoryFloat},
		{"0.000", CategoryOtherNumeric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeNumberFormat(tt.code, num(tt.code)), "code %q", tt.code)
	}

	// Date-ish formats flip the storage type to datetime first, so the
	// category lands in the date family.
	rec := num("yyyy-mm-dd")
	assert.Equal(t, CategoryDate, CategorizeNumberFormat("yyyy-mm-dd", rec))
	// "mm" counts as a date keyword even between colons, so h:mm:ss is a
	// datetime rather than a pure time.
	rec = num("h:mm:ss")
	assert.Equal(t, CategoryDatetime, CategorizeNumberFormat("h:mm:ss", rec))
	rec = num("hh:ss")
	assert.Equal(t, CategoryTime, CategorizeNumberFormat("hh:ss", rec))
	rec = num("yyyy-mm-dd h:mm")
	assert.Equal(t, CategoryDatetime, CategorizeNumberFormat("yyyy-mm-dd h:mm", rec))

	// Not applicable for text cells.
	text := CellRecord{Value: "x", Type: TypeText, NumberFormat: "0.00"}
	assert.Equal(t, CategoryNotApplicable, CategorizeNumberFormat("0.00", text))
}

func TestSemanticType(t *testing.T) {
	tests := []struct {
		name string
		rec  CellRecord
		want string
	}{
		{"integer", CellRecord{Value: "42", Type: TypeNumber, NumberFormat: "General"}, SemanticInteger},
		{"float", CellRecord{Value: "42.5", Type: TypeNumber, NumberFormat: "General"}, SemanticFloat},
		{"integer value wins over float format", CellRecord{Value: "42", Type: TypeNumber, NumberFormat: "0.00"}, SemanticInteger},
		{"percentage", CellRecord{Value: "0.1", Type: TypeNumber, NumberFormat: "0%"}, SemanticPercentage},
		{"currency", CellRecord{Value: "9.99", Type: TypeNumber, NumberFormat: "$#,##0.00"}, SemanticCurrency},
		{"date", CellRecord{Value: "45321", Type: TypeNumber, NumberFormat: "m/d/yyyy"}, SemanticDate},
		{"year", CellRecord{Value: "45321", Type: TypeNumber, NumberFormat: "yyyy"}, SemanticYear},
		{"minutes fold into date", CellRecord{Value: "0.5", Type: TypeNumber, NumberFormat: "h:mm"}, SemanticDate},
		{"time", CellRecord{Value: "0.5", Type: TypeNumber, NumberFormat: "hh:ss"}, SemanticTime},
		{"scientific", CellRecord{Value: "1000", Type: TypeNumber, NumberFormat: "0.00E+00"}, SemanticScientific},
		{"email", CellRecord{Value: "x@example.com", Type: TypeText}, InferredEmail},
		{"text", CellRecord{Value: "hello", Type: TypeText}, InferredText},
		{"boolean", CellRecord{Value: "TRUE", Type: TypeBool}, InferredBoolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SemanticType(tt.rec))
		})
	}
}

func TestIsNumericFamily(t *testing.T) {
	assert.True(t, IsNumericFamily(SemanticInteger))
	assert.True(t, IsNumericFamily(SemanticFloat))
	assert.True(t, IsNumericFamily(InferredNumeric))
	assert.False(t, IsNumericFamily(SemanticCurrency))
	assert.False(t, IsNumericFamily(InferredText))
	assert.False(t, IsNumericFamily(SemanticDate))
}

func TestIsDateFormatCode(t *testing.T) {
	dates := []string{"yyyy-mm-dd", "m/d/yyyy", "d-mmm-yy", "h:mm:ss", "[h]:mm:ss", "mmm-yy"}
	for _, code := range dates {
		assert.True(t, IsDateFormatCode(code), "code %q", code)
	}
	nonDates := []string{"", "General", "@", "0.00", "#,##0", "0.00E+00", "##0.0E+0", "# ?/?", `"yes";"no"`}
	for _, code := range nonDates {
		assert.False(t, IsDateFormatCode(code), "code %q", code)
	}
}

func TestBuiltinFormatCode(t *testing.T) {
	assert.Equal(t, "General", BuiltinFormatCode(0))
	assert.Equal(t, "0.00", BuiltinFormatCode(2))
	assert.Equal(t, "m/d/yyyy", BuiltinFormatCode(14))
	assert.Equal(t, "General", BuiltinFormatCode(999))
}
