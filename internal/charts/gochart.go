package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChartRenderer desenha os gráficos com go-chart. As barras saem na vertical.
type GoChartRenderer struct {
	width  int
	height int
}

func (r *GoChartRenderer) Render(w io.Writer, spec Spec, format Format) error {
	if len(spec.Values) == 0 {
		return ErrEmptyChart
	}

	var provider chart.RendererProvider
	switch format {
	case FormatSVG:
		provider = chart.SVG
	case FormatPNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	fill := drawing.ColorFromHex(spec.Color)
	lo, hi := valueRange(spec.Values)

	var err error
	switch spec.Kind {
	case HorizontalBar:
		err = r.bars(spec, fill, lo, hi).Render(provider, w)
	case Line:
		err = r.line(spec, fill, lo, hi).Render(provider, w)
	default:
		return fmt.Errorf("tipo de gráfico não suportado: %d", spec.Kind)
	}
	if err != nil {
		return fmt.Errorf("erro ao desenhar gráfico: %w", err)
	}

	return nil
}

func (r *GoChartRenderer) bars(spec Spec, fill drawing.Color, lo, hi float64) chart.BarChart {
	bars := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		bars[i] = chart.Value{
			Label: spec.Labels[i],
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	width := max(8, (r.width-120)/(2*len(bars)))

	return chart.BarChart{
		Title:        spec.Title,
		Width:        r.width,
		Height:       r.height,
		BarWidth:     width,
		BarSpacing:   width,
		UseBaseValue: true,
		BaseValue:    0,
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
}

func (r *GoChartRenderer) line(spec Spec, fill drawing.Color, lo, hi float64) chart.Chart {
	xs := make([]float64, len(spec.Values))
	ticks := make([]chart.Tick, len(spec.Values))
	for i := range spec.Values {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: spec.Labels[i]}
	}

	return chart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(xs)) - 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.YLabel,
				XValues: xs,
				YValues: spec.Values,
				Style: chart.Style{
					StrokeColor: fill,
					StrokeWidth: 2,
					DotColor:    fill,
					DotWidth:    4,
				},
			},
		},
	}
}
