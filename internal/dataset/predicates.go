package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// CountryIs seleciona as linhas de um país
func CountryIs(country string) dataframe.F {
	return dataframe.F{Colname: domain.ColCountry, Comparator: series.Eq, Comparando: encodeText(country)}
}

// YearIs seleciona as linhas de um ano
func YearIs(year int) dataframe.F {
	return dataframe.F{Colname: domain.ColYear, Comparator: series.Eq, Comparando: year}
}
