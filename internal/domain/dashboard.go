package domain

// KPIs são os indicadores calculados sobre a visão filtrada
type KPIs struct {
	TotalSales            float64 `json:"total_sales"`
	TotalUnits            float64 `json:"total_units"`
	TotalProfit           float64 `json:"total_profit"`
	AvgSalePrice          float64 `json:"avg_sale_price"`
	AvgManufacturingPrice float64 `json:"avg_manufacturing_price"`
	ProfitMargin          float64 `json:"profit_margin"`
}

// KPICard é um indicador já formatado para exibição
type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GroupTotal é o resultado de um agrupamento com soma
type GroupTotal struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// CumulativePoint é um ponto da série de vendas acumuladas por mês
type CumulativePoint struct {
	Month      string  `json:"month"`
	Sales      float64 `json:"sales"`
	Cumulative float64 `json:"cumulative"`
}

// Aggregations reúne as projeções usadas pelos gráficos
type Aggregations struct {
	TopCountriesBySales    []GroupTotal      `json:"top_countries_by_sales"`
	TopCountriesByProfit   []GroupTotal      `json:"top_countries_by_profit"`
	CumulativeSalesByMonth []CumulativePoint `json:"cumulative_sales_by_month"`
	CogsByProduct          []GroupTotal      `json:"cogs_by_product"`
	ProfitBySegment        []GroupTotal      `json:"profit_by_segment"`
}

// Warning é um aviso não fatal anexado ao dashboard
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Dashboard é a resposta completa para um par de filtros
type Dashboard struct {
	Filters      Filters       `json:"filters"`
	Rows         int           `json:"rows"`
	KPIs         KPIs          `json:"kpis"`
	Cards        []KPICard     `json:"cards"`
	Aggregations Aggregations  `json:"aggregations"`
	Preview      []SalesRecord `json:"preview"`
	Warnings     []Warning     `json:"warnings,omitempty"`
}

// IsEmpty indica se a combinação de filtros não retornou linhas
func (d *Dashboard) IsEmpty() bool {
	return d == nil || d.Rows == 0
}
