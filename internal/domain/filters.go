package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Valores sentinela que significam "sem filtro" para uma dimensão
const (
	AllCountries = "Tous"
	AllYears     = "Toutes"
	AllValues    = "all"
)

// Filters representa os filtros opcionais aplicados ao dataset.
// Um campo nil significa que a dimensão não é filtrada.
type Filters struct {
	Country *string `json:"country,omitempty"`
	Year    *int    `json:"year,omitempty"`
}

// IsSentinel indica se o valor informado desativa o filtro
func IsSentinel(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" ||
		strings.EqualFold(v, AllCountries) ||
		strings.EqualFold(v, AllYears) ||
		strings.EqualFold(v, AllValues)
}

// ParseFilters converte os valores brutos dos seletores em Filters
func ParseFilters(country, year string) (Filters, error) {
	var f Filters

	if !IsSentinel(country) {
		c := strings.TrimSpace(country)
		f.Country = &c
	}

	if !IsSentinel(year) {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			return Filters{}, fmt.Errorf("ano inválido %q: %w", year, err)
		}
		f.Year = &y
	}

	return f, nil
}

// Key retorna uma chave estável para memoização do par (país, ano)
func (f Filters) Key() string {
	country, year := AllValues, AllValues
	if f.Country != nil {
		country = *f.Country
	}
	if f.Year != nil {
		year = strconv.Itoa(*f.Year)
	}
	return country + "|" + year
}

// CountryValue retorna o país selecionado ou o sentinela
func (f Filters) CountryValue() string {
	if f.Country == nil {
		return AllCountries
	}
	return *f.Country
}

// YearValue retorna o ano selecionado ou o sentinela
func (f Filters) YearValue() string {
	if f.Year == nil {
		return AllYears
	}
	return strconv.Itoa(*f.Year)
}

// FilterOptions são as opções disponíveis nos seletores
type FilterOptions struct {
	Countries []string `json:"countries"`
	Years     []int    `json:"years"`
}
