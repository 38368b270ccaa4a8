package utils

import (
	"bytes"
	"strings"
)

// utf8BOM makes spreadsheet applications read the export as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// QuoteCSVField wraps a field in double quotes, doubling internal quotes.
// Every field is quoted unconditionally; that is the export contract, and it
// is why encoding/csv (which quotes only when necessary) is not used here.
func QuoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// BuildCSV renders a header row plus data rows as a BOM-prefixed UTF-8 CSV.
func BuildCSV(headers []string, rows [][]string) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writeRow(&buf, headers)
	for _, row := range rows {
		writeRow(&buf, row)
	}
	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(QuoteCSVField(f))
	}
	buf.WriteString("\r\n")
}
