package filtering

import (
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Apply devolve as linhas que atendem a todos os filtros presentes.
// Filtros ausentes deixam passar todas as linhas; a tabela de origem não é alterada.
func Apply(table *dataset.Table, filters domain.Filters) (*dataset.Table, error) {
	predicates := make([]dataframe.F, 0, 2)
	if filters.Country != nil {
		predicates = append(predicates, dataset.CountryIs(*filters.Country))
	}
	if filters.Year != nil {
		predicates = append(predicates, dataset.YearIs(*filters.Year))
	}

	if len(predicates) == 0 {
		return table, nil
	}

	return table.Where(predicates...)
}

// Options monta as opções dos seletores. Os países saem na ordem em que aparecem no dataset;
// os anos são calculados depois de aplicar o filtro de país e saem em ordem crescente.
func Options(table *dataset.Table, country *string) (*domain.FilterOptions, error) {
	countries := lo.Uniq(table.Strings(domain.ColCountry))

	byCountry, err := Apply(table, domain.Filters{Country: country})
	if err != nil {
		return nil, err
	}

	years, err := byCountry.Ints(domain.ColYear)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler anos disponíveis")
	}
	years = lo.Uniq(years)
	slices.Sort(years)

	return &domain.FilterOptions{
		Countries: countries,
		Years:     years,
	}, nil
}
