package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// strip grouping spaces (NBSP/NNBSP included) and currency/percent marks
var stripMarks = strings.NewReplacer(
	" ", "", " ", "", " ", "", "\t", "",
	"€", "", "$", "", "%", "",
)

// ParseFloat parses numbers as exported by European spreadsheets:
// "1.234,56", "1 234,56 €", "1,234.56", "3,5", plain "42". When both
// separators occur, the one further right is the decimal point.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = stripMarks.Replace(s)

	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "") // grouping only
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}

	// drop remaining junk, keep digits/dot/minus
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
