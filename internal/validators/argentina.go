package validators

import (
	"strings"
	"unicode"
)

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// IsCUITValid confere os 11 dígitos e o dígito verificador do CUIT
func IsCUITValid(cuit string) bool {
	d := digits(cuit)
	if len(d) != 11 {
		return false
	}

	weights := []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i, w := range weights {
		sum += int(d[i]-'0') * w
	}

	check := 11 - sum%11
	switch check {
	case 11:
		check = 0
	case 10:
		check = 9
	}
	return int(d[10]-'0') == check
}

// FormatCUIT devolve XX-XXXXXXXX-X; entradas sem 11 dígitos voltam como vieram
func FormatCUIT(cuit string) string {
	d := digits(cuit)
	if len(d) != 11 {
		return cuit
	}
	return d[:2] + "-" + d[2:10] + "-" + d[10:]
}

// FormatPhoneAR normaliza telefones de Buenos Aires para +5411-XXXX-XXXX
func FormatPhoneAR(phone string) string {
	d := digits(phone)

	if strings.HasPrefix(d, "54") && len(d) >= 10 {
		rest := d[2:]
		if strings.HasPrefix(rest, "11") && len(rest) >= 6 {
			return "+54" + rest[:2] + "-" + rest[2:6] + "-" + rest[6:]
		}
	}
	if strings.HasPrefix(d, "11") && len(d) >= 10 {
		return "+54" + d[:2] + "-" + d[2:6] + "-" + d[6:]
	}
	return phone
}
