// Package forms binds the budget fields to interactive huh forms. The
// forms never compute pricing; every collected value is applied through
// an engine operation.
package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// parseMoney accepts "5000", "5000.50" and the pt-BR "5000,50".
func parseMoney(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

func validateMoney(raw string) error {
	v, err := parseMoney(raw)
	if err != nil {
		return fmt.Errorf("valor inválido")
	}
	if v < 0 {
		return fmt.Errorf("o valor não pode ser negativo")
	}
	return nil
}

func validatePositiveInt(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fmt.Errorf("informe um número inteiro positivo")
	}
	return nil
}

// moneyInput returns a huh.Input for a non-negative monetary field.
func moneyInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("5000").
		Validate(validateMoney).
		Value(value)
}

// intInput returns a huh.Input for a positive integer field.
func intInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(validatePositiveInt).
		Value(value)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
