// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Nomes canônicos das colunas do dataset de vendas
const (
	ColCountry            = "Country"
	ColYear               = "Year"
	ColMonthName          = "Month Name"
	ColProduct            = "Product"
	ColSegment            = "Segment"
	ColSales              = "Sales"
	ColUnitsSold          = "Units Sold"
	ColProfit             = "Profit"
	ColSalePrice          = "Sale Price"
	ColManufacturingPrice = "Manufacturing Price"
	ColCOGS               = "COGS"
)

// TextColumns são as colunas obrigatórias do tipo texto
var TextColumns = []string{ColCountry, ColMonthName, ColProduct, ColSegment}

// NumericColumns são as colunas obrigatórias numéricas
var NumericColumns = []string{ColSales, ColUnitsSold, ColProfit, ColSalePrice, ColManufacturingPrice, ColCOGS}

// RequiredColumns lista todas as colunas que o dataset precisa conter
func RequiredColumns() []string {
	cols := make([]string, 0, len(TextColumns)+len(NumericColumns)+1)
	cols = append(cols, ColCountry, ColYear, ColMonthName, ColProduct, ColSegment)
	cols = append(cols, NumericColumns...)
	return cols
}

// SalesRecord representa uma linha do dataset de vendas
type SalesRecord struct {
	Country            string  `json:"country"`
	Year               int     `json:"year"`
	MonthName          string  `json:"month_name"`
	Product            string  `json:"product"`
	Segment            string  `json:"segment"`
	Sales              float64 `json:"sales"`
	UnitsSold          float64 `json:"units_sold"`
	Profit             float64 `json:"profit"`
	SalePrice          float64 `json:"sale_price"`
	ManufacturingPrice float64 `json:"manufacturing_price"`
	COGS               float64 `json:"cogs"`
}
