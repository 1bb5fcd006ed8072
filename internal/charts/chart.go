// Package charts desenha as projeções do painel como imagens SVG ou PNG
package charts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Name string

const (
	TopCountriesSales  Name = "top-countries-sales"
	TopCountriesProfit Name = "top-countries-profit"
	CumulativeSales    Name = "cumulative-sales"
	CogsByProduct      Name = "cogs-by-product"
	ProfitBySegment    Name = "profit-by-segment"
)

// Names lista os gráficos na ordem de exibição do painel
func Names() []Name {
	return []Name{TopCountriesSales, TopCountriesProfit, CumulativeSales, CogsByProduct, ProfitBySegment}
}

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat aceita "svg" e "png". Vazio significa SVG.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// ContentType retorna o media type da imagem
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

var (
	ErrUnknownChart  = errors.New("gráfico desconhecido")
	ErrUnknownFormat = errors.New("formato de imagem não suportado")
	ErrUnknownEngine = errors.New("motor de gráficos desconhecido")
	ErrEmptyChart    = errors.New("gráfico sem dados")
)

type Kind int

const (
	HorizontalBar Kind = iota
	Line
)

// Spec descreve um gráfico independente do motor que o desenha
type Spec struct {
	Name   Name
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []float64
	Color  string
}

// Renderer desenha um Spec no formato pedido
type Renderer interface {
	Render(w io.Writer, spec Spec, format Format) error
}

// Build monta o Spec de um gráfico a partir das agregações do painel.
// Projeções sem linhas retornam ErrEmptyChart.
func Build(name Name, aggs domain.Aggregations, topN int) (Spec, error) {
	var spec Spec

	switch name {
	case TopCountriesSales:
		spec = barSpec(aggs.TopCountriesBySales, fmt.Sprintf("Top %d Pays par Ventes", topN), "Sales", "Country", "1F77B4")
	case TopCountriesProfit:
		spec = barSpec(aggs.TopCountriesByProfit, fmt.Sprintf("Top %d Pays par Profits", topN), "Profit", "Country", "2CA02C")
	case CogsByProduct:
		spec = barSpec(aggs.CogsByProduct, "COGS par Produit (Ordre Croissant)", "COGS", "Product", "D62728")
	case ProfitBySegment:
		spec = barSpec(aggs.ProfitBySegment, "Profits par Segment (Ordre Croissant)", "Profit", "Segment", "1F77B4")
	case CumulativeSales:
		spec = Spec{
			Kind:   Line,
			Title:  "Ventes Cumulées Mensuelles",
			XLabel: "Month Name",
			YLabel: "Cumulative Sales",
			Color:  "FF5733",
		}
		for _, point := range aggs.CumulativeSalesByMonth {
			spec.Labels = append(spec.Labels, point.Month)
			spec.Values = append(spec.Values, point.Cumulative)
		}
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}

	spec.Name = name
	if len(spec.Values) == 0 {
		return spec, ErrEmptyChart
	}

	return spec, nil
}

func barSpec(items []domain.GroupTotal, title, xLabel, yLabel, color string) Spec {
	spec := Spec{
		Kind:   HorizontalBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Color:  color,
	}
	for _, item := range items {
		spec.Labels = append(spec.Labels, item.Key)
		spec.Values = append(spec.Values, item.Value)
	}
	return spec
}

// valueRange devolve um intervalo que sempre inclui zero e nunca é degenerado
func valueRange(values []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
