package grid

import "strings"

// builtinNumFmt maps the ECMA-376 built-in number format IDs to their
// format codes. Custom formats (ID >= 164) come from the workbook itself.
var builtinNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yyyy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yyyy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// BuiltinFormatCode returns the format code for a built-in number format
// ID, or "General" when the ID is unknown.
func BuiltinFormatCode(id int) string {
	if code, ok := builtinNumFmt[id]; ok {
		return code
	}
	return "General"
}

var nonDateFormats = map[string]bool{
	"0.00E+00": true,
	"##0.0E+0": true,
	"General":  true,
	"GENERAL":  true,
	"general":  true,
	"@":        true,
}

// IsDateFormatCode reports whether a number format code renders its value
// as a date or time. Quoted literals, escapes and bracketed sections are
// stripped first; what remains is a date format if it uses any of the
// y/m/d/h/s placeholders.
func IsDateFormatCode(code string) bool {
	if code == "" || nonDateFormats[code] {
		return false
	}

	var reduced strings.Builder
	state := 0
	for _, c := range code {
		switch state {
		case 0:
			switch {
			case c == '"':
				state = 1
			case c == '\\' || c == '_' || c == '*':
				state = 2
			case c == '[':
				state = 3
			case strings.ContainsRune("$-+/():, ", c):
				// skip
			default:
				reduced.WriteRune(c)
			}
		case 1:
			if c == '"' {
				state = 0
			}
		case 2:
			state = 0
		case 3:
			if c == ']' {
				state = 0
			}
		}
	}

	s := reduced.String()
	if s == "" || nonDateFormats[s] {
		return false
	}
	return strings.ContainsAny(strings.ToLower(s), "ymdhs") &&
		!strings.ContainsAny(s, "#?")
}
