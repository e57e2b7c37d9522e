package entity

import "regexp"

// Formato de teléfono vietnamita: 0 o +84, prefijo móvil 3/5/7/8/9, 8 dígitos.
var phoneRegexp = regexp.MustCompile(`^(0|\+84)[35789][0-9]{8}$`)

// IsValidPhone valida un número de teléfono móvil (formato vi-VN).
func IsValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}
