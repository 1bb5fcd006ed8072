package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleAggregations() domain.Aggregations {
	return domain.Aggregations{
		TopCountriesBySales: []domain.GroupTotal{
			{Key: "Mexico", Value: 352500},
			{Key: "Canada", Value: 198263.75},
		},
		TopCountriesByProfit: []domain.GroupTotal{
			{Key: "Mexico", Value: 58750},
			{Key: "Canada", Value: -1746.25},
		},
		CumulativeSalesByMonth: []domain.CumulativePoint{
			{Month: "December", Sales: 352500, Cumulative: 352500},
			{Month: "January", Sales: 58790, Cumulative: 411290},
		},
		CogsByProduct:   []domain.GroupTotal{{Key: "Paseo", Value: 301160}},
		ProfitBySegment: []domain.GroupTotal{{Key: "Enterprise", Value: -1746.25}, {Key: "Government", Value: 29395}},
	}
}

func TestBuild(t *testing.T) {
	aggs := sampleAggregations()

	spec, err := Build(TopCountriesSales, aggs, 10)
	require.NoError(t, err)
	assert.Equal(t, HorizontalBar, spec.Kind)
	assert.Equal(t, "Top 10 Pays par Ventes", spec.Title)
	assert.Equal(t, []string{"Mexico", "Canada"}, spec.Labels)
	assert.Equal(t, []float64{352500, 198263.75}, spec.Values)

	spec, err = Build(CumulativeSales, aggs, 10)
	require.NoError(t, err)
	assert.Equal(t, Line, spec.Kind)
	assert.Equal(t, []string{"December", "January"}, spec.Labels)
	assert.Equal(t, []float64{352500, 411290}, spec.Values)

	_, err = Build("pizza", aggs, 10)
	assert.ErrorIs(t, err, ErrUnknownChart)

	_, err = Build(CogsByProduct, domain.Aggregations{}, 10)
	assert.ErrorIs(t, err, ErrEmptyChart)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, format)

	format, err = ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)
	assert.Equal(t, "image/png", format.ContentType())

	_, err = ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewRenderer(t *testing.T) {
	renderer, err := NewRenderer("", 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &GonumRenderer{}, renderer)

	renderer, err = NewRenderer("GoChart", 800, 400)
	require.NoError(t, err)
	assert.IsType(t, &GoChartRenderer{}, renderer)

	_, err = NewRenderer("plotly", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestRenderers(t *testing.T) {
	aggs := sampleAggregations()

	for _, engine := range []string{EngineGonum, EngineGoChart} {
		renderer, err := NewRenderer(engine, 0, 0)
		require.NoError(t, err)

		for _, name := range Names() {
			spec, err := Build(name, aggs, 10)
			require.NoError(t, err)

			t.Run(engine+"/"+string(name)+"/svg", func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, renderer.Render(&buf, spec, FormatSVG))
				assert.Contains(t, buf.String(), "<svg")
			})

			t.Run(engine+"/"+string(name)+"/png", func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, renderer.Render(&buf, spec, FormatPNG))
				assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
			})
		}

		t.Run(engine+"/vazio", func(t *testing.T) {
			var buf bytes.Buffer
			err := renderer.Render(&buf, Spec{Kind: HorizontalBar}, FormatSVG)
			assert.ErrorIs(t, err, ErrEmptyChart)
			assert.Zero(t, buf.Len())
		})
	}
}
