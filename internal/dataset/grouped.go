package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const totalColumn = "Total"

// Grouped é o resultado de um agrupamento: uma linha por chave distinta e sua soma
type Grouped struct {
	df  dataframe.DataFrame
	key string
}

// Len retorna o número de grupos
func (g *Grouped) Len() int {
	return g.df.Nrow()
}

// Ascending ordena os grupos pela soma, do menor para o maior
func (g *Grouped) Ascending() (*Grouped, error) {
	return g.arrange(dataframe.Sort(totalColumn))
}

// Descending ordena os grupos pela soma, do maior para o menor
func (g *Grouped) Descending() (*Grouped, error) {
	return g.arrange(dataframe.RevSort(totalColumn))
}

func (g *Grouped) arrange(order dataframe.Order) (*Grouped, error) {
	if g.Len() < 2 {
		return g, nil
	}
	df := g.df.Arrange(order)
	if df.Err != nil {
		return nil, errors.Wrapf(df.Err, "erro ao ordenar grupos de %q", g.key)
	}
	return &Grouped{df: df, key: g.key}, nil
}

// Head mantém apenas os n primeiros grupos. n <= 0 mantém todos.
func (g *Grouped) Head(n int) (*Grouped, error) {
	if n <= 0 || g.Len() <= n {
		return g, nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	df := g.df.Subset(idx)
	if df.Err != nil {
		return nil, errors.Wrapf(df.Err, "erro ao limitar grupos de %q", g.key)
	}
	return &Grouped{df: df, key: g.key}, nil
}

// Items converte os grupos para o domínio, preservando a ordem atual
func (g *Grouped) Items() []domain.GroupTotal {
	items := make([]domain.GroupTotal, 0, g.Len())
	if g.Len() == 0 {
		return items
	}

	keys := g.df.Col(g.key).Records()
	totals := g.df.Col(totalColumn).Float()
	for i := range keys {
		items = append(items, domain.GroupTotal{Key: decodeText(keys[i]), Value: totals[i]})
	}
	return items
}
