package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Memo carrega o dataset no máximo uma vez por processo, com sucesso ou falha,
// e entrega a mesma Table imutável a todos os consumidores
type Memo struct {
	source Source
	once   sync.Once
	table  *Table
	err    error
}

// NewMemo cria um Memo para a origem informada
func NewMemo(source Source) *Memo {
	return &Memo{source: source}
}

// Table retorna o dataset, carregando-o na primeira chamada
func (m *Memo) Table(ctx context.Context) (*Table, error) {
	m.once.Do(func() {
		start := time.Now()
		m.table, m.err = Load(ctx, m.source)

		if m.err != nil {
			logrus.WithError(m.err).WithField("source", m.source.Describe()).Error("Erro ao carregar dataset")
			return
		}

		logrus.WithFields(logrus.Fields{
			"source":      m.source.Describe(),
			"rows":        m.table.Len(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Dataset carregado com sucesso")
	})

	return m.table, m.err
}
