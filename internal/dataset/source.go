package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Tipos de origem suportados
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

// Source entrega o dataset bruto: cabeçalho na primeira linha, dados nas seguintes
type Source interface {
	Records(ctx context.Context) ([][]string, error)
	Describe() string
}

// CSVSource lê um arquivo delimitado por vírgulas com cabeçalho
type CSVSource struct {
	Path string
}

func (s CSVSource) Describe() string {
	return "csv:" + s.Path
}

func (s CSVSource) Records(_ context.Context) ([][]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", s.Path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler CSV %s", s.Path)
	}

	return records, nil
}

// XLSXSource lê uma planilha do Excel. Sem Sheet, usa a primeira aba.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s XLSXSource) Describe() string {
	if s.Sheet == "" {
		return "xlsx:" + s.Path
	}
	return fmt.Sprintf("xlsx:%s[%s]", s.Path, s.Sheet)
}

func (s XLSXSource) Records(_ context.Context) ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", s.Path)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %q de %s", sheet, s.Path)
	}

	return rows, nil
}

// NewFileSource escolhe a origem pelo tipo informado ou, se vazio, pela extensão do arquivo
func NewFileSource(kind, path, sheet string) (Source, error) {
	if kind == "" {
		kind = SourceCSV
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			kind = SourceXLSX
		}
	}

	switch strings.ToLower(kind) {
	case SourceCSV:
		return CSVSource{Path: path}, nil
	case SourceXLSX:
		return XLSXSource{Path: path, Sheet: sheet}, nil
	default:
		return nil, fmt.Errorf("tipo de origem de arquivo desconhecido: %q", kind)
	}
}

// Load lê a origem e monta a Table. Qualquer falha vira um LoadError.
func Load(ctx context.Context, src Source) (*Table, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Describe(), Err: fmt.Errorf("%w: %w", ErrUnreadable, err)}
	}

	table, err := FromRecords(records)
	if err != nil {
		return nil, &LoadError{Source: src.Describe(), Err: err}
	}

	return table, nil
}
