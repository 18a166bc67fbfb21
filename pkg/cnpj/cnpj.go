package cnpj

import (
	"fmt"
	"unicode"
)

// pesos para los dos dígitos verificadores del CNPJ (módulo 11).
// Se aplican de izquierda a derecha sobre los 12 y 13 primeros dígitos.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize valida un CNPJ (con o sin puntuación: "12.345.678/0001-95") y
// devuelve sus 14 dígitos sin formato. Rechaza longitud distinta de 14,
// secuencias de un solo dígito repetido y dígitos verificadores incorrectos.
func Normalize(raw string) (string, error) {
	digits := extractDigits(raw)
	if len(digits) != 14 {
		return "", fmt.Errorf("cnpj: se requieren 14 dígitos, se encontraron %d", len(digits))
	}
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", fmt.Errorf("cnpj: secuencia repetida inválida")
	}
	if digits[12] != checkDigit(digits[:12], firstWeights[:]) {
		return "", fmt.Errorf("cnpj: primer dígito verificador inválido")
	}
	if digits[13] != checkDigit(digits[:13], secondWeights[:]) {
		return "", fmt.Errorf("cnpj: segundo dígito verificador inválido")
	}
	return string(digits), nil
}

// Valid indica si el CNPJ tiene dígitos verificadores correctos.
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func checkDigit(digits []byte, weights []int) byte {
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
