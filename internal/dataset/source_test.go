package dataset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset/datasettest"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	table, err := dataset.Load(context.Background(), dataset.CSVSource{Path: filepath.Join("testdata", "sales.csv")})
	require.NoError(t, err)

	assert.Equal(t, 6, table.Len())
	// Cabeçalhos com espaços são normalizados e colunas extras são mantidas
	assert.Contains(t, table.Columns(), domain.ColCountry)
	assert.Contains(t, table.Columns(), "Discount Band")

	years, err := table.Ints(domain.ColYear)
	require.NoError(t, err)
	assert.Equal(t, []int{2014, 2014, 2014, 2014, 2013, 2013}, years)
	assert.InDelta(t, 1618.5, table.Floats(domain.ColUnitsSold)[0], 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.csv")
	require.NoError(t, os.WriteFile(malformed, []byte("Country,Year\nFrance,2014,extra\n"), 0o600))

	missingCols := filepath.Join(dir, "missing.csv")
	require.NoError(t, os.WriteFile(missingCols, []byte("Country,Year\nFrance,2014\n"), 0o600))

	tests := []struct {
		name   string
		source dataset.Source
		target error
	}{
		{name: "arquivo inexistente", source: dataset.CSVSource{Path: filepath.Join(dir, "nope.csv")}, target: dataset.ErrUnreadable},
		{name: "csv malformado", source: dataset.CSVSource{Path: malformed}, target: dataset.ErrUnreadable},
		{name: "colunas ausentes", source: dataset.CSVSource{Path: missingCols}, target: dataset.ErrMissingColumns},
		{name: "planilha inexistente", source: dataset.XLSXSource{Path: filepath.Join(dir, "nope.xlsx")}, target: dataset.ErrUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.Load(context.Background(), tt.source)
			require.Error(t, err)
			assert.True(t, dataset.IsLoadError(err))
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.source.Describe())
		})
	}
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")

	f := excelize.NewFile()
	for r, row := range datasettest.Records(datasettest.Sample()...) {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr("Sheet1", cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := dataset.Load(context.Background(), dataset.XLSXSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, len(datasettest.Sample()), table.Len())

	_, err = dataset.Load(context.Background(), dataset.XLSXSource{Path: path, Sheet: "Inexistente"})
	assert.ErrorIs(t, err, dataset.ErrUnreadable)
}

func TestNewFileSource(t *testing.T) {
	src, err := dataset.NewFileSource("", "data/Financials.xlsx", "")
	require.NoError(t, err)
	assert.IsType(t, dataset.XLSXSource{}, src)

	src, err = dataset.NewFileSource("", "data/Financials_cleaned.csv", "")
	require.NoError(t, err)
	assert.IsType(t, dataset.CSVSource{}, src)

	src, err = dataset.NewFileSource("XLSX", "data/export.bin", "Vendas")
	require.NoError(t, err)
	assert.Equal(t, dataset.XLSXSource{Path: "data/export.bin", Sheet: "Vendas"}, src)

	_, err = dataset.NewFileSource("parquet", "data/x.parquet", "")
	assert.Error(t, err)
}

type countingSource struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingSource) Describe() string { return "contador" }

func (s *countingSource) Records(context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return datasettest.Records(datasettest.Sample()...), nil
}

func TestMemo_LoadsOnce(t *testing.T) {
	src := &countingSource{}
	memo := dataset.NewMemo(src)

	var wg sync.WaitGroup
	tables := make([]*dataset.Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, err := memo.Table(context.Background())
			assert.NoError(t, err)
			tables[i] = table
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, src.calls)
	for _, table := range tables {
		assert.Same(t, tables[0], table)
	}
}

func TestMemo_FailureIsMemoized(t *testing.T) {
	src := &countingSource{err: errors.New("disco indisponível")}
	memo := dataset.NewMemo(src)

	_, err := memo.Table(context.Background())
	require.Error(t, err)
	_, err = memo.Table(context.Background())
	require.Error(t, err)

	assert.True(t, dataset.IsLoadError(err))
	assert.Equal(t, 1, src.calls)
}
