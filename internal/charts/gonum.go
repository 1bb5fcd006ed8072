package charts

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// GonumRenderer desenha os gráficos com gonum/plot
type GonumRenderer struct {
	width  int
	height int
}

func (r *GonumRenderer) Render(w io.Writer, spec Spec, format Format) error {
	if len(spec.Values) == 0 {
		return ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Add(plotter.NewGrid())

	fill := hexColor(spec.Color)

	switch spec.Kind {
	case HorizontalBar:
		bars, err := plotter.NewBarChart(plotter.Values(spec.Values), vg.Points(barWidth(r.height, len(spec.Values))))
		if err != nil {
			return fmt.Errorf("erro ao criar barras: %w", err)
		}
		bars.Horizontal = true
		bars.Color = fill
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		p.NominalY(spec.Labels...)
		p.X.Min, p.X.Max = valueRange(spec.Values)
	case Line:
		points := make(plotter.XYs, len(spec.Values))
		for i, v := range spec.Values {
			points[i].X = float64(i)
			points[i].Y = v
		}
		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return fmt.Errorf("erro ao criar linha: %w", err)
		}
		line.Color = fill
		line.Width = vg.Points(2)
		scatter.Color = fill
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(3)
		p.Add(line, scatter)
		p.NominalX(spec.Labels...)
		p.Y.Min, p.Y.Max = valueRange(spec.Values)
	default:
		return fmt.Errorf("tipo de gráfico não suportado: %d", spec.Kind)
	}

	width := vg.Points(float64(r.width))
	height := vg.Points(float64(r.height))

	var canvas vg.CanvasWriterTo
	switch format {
	case FormatSVG:
		canvas = vgsvg.New(width, height)
	case FormatPNG:
		canvas = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	p.Draw(draw.New(canvas))

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao escrever gráfico: %w", err)
	}

	return nil
}

func barWidth(height, bars int) float64 {
	width := float64(height) / float64(bars+2) * 0.6
	return max(4, min(width, 40))
}

func hexColor(hex string) color.Color {
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	}
	return color.RGBA{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value), A: 0xFF}
}
