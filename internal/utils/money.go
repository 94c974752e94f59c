package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent 2-decimal formatting for currency fields.
// Amounts keep full float precision through aggregation; rounding happens
// only here, at render time.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatPesos renders an amount with currency sign, e.g. "$1,250.00".
func FormatPesos(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := FormatMoney(amount)
	entero := s
	frac := "00"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		entero = s[:i]
		frac = s[i+1:]
	}
	n, _ := strconv.ParseInt(entero, 10, 64)
	return fmt.Sprintf("%s$%s.%s", sign, formatThousand(n), frac)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
