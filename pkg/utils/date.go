package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia ou data que
// não parseia é erro; quem decide transformar isso em "sem resultado" é o
// chamador.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("data vazia")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
