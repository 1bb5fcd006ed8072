package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard-api/internal/bootstrap"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func main() {
	flags := pflag.NewFlagSet("report", pflag.ExitOnError)
	flags.String("data", "", "caminho do dataset (CSV ou XLSX)")
	flags.String("source", "", "origem do dataset: csv, xlsx ou postgres")
	flags.String("country", domain.AllCountries, "país ("+domain.AllCountries+" para todos)")
	flags.String("year", domain.AllYears, "ano ("+domain.AllYears+" para todos)")
	flags.String("month-order", "", "ordem dos meses: alphabetical, calendar ou first-seen")
	flags.Int("top", 0, "quantidade de países nos rankings")
	flags.Bool("json", false, "imprime o painel em JSON")
	_ = flags.Parse(os.Args[1:])

	bindFlags(flags)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	_ = log.Setup("warn", cfg.App.Env)

	filters, err := domain.ParseFilters(viper.GetString("country"), viper.GetString("year"))
	if err != nil {
		logrus.Fatal(err)
	}

	dashboard, err := buildDashboard(context.Background(), cfg, filters)
	if err != nil {
		logrus.Fatal(err)
	}

	if viper.GetBool("json") {
		out, err := utils.PrettyJson(dashboard)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(out)
		return
	}

	printReport(os.Stdout, dashboard)
}

// bindFlags associa as flags às chaves de configuração. Flags informadas têm precedência sobre o ambiente.
func bindFlags(flags *pflag.FlagSet) {
	keys := map[string]string{
		"data":        "DATASET_PATH",
		"source":      "DATASET_SOURCE",
		"month-order": "DASHBOARD_MONTH_ORDER",
		"top":         "DASHBOARD_TOP_N",
		"country":     "country",
		"year":        "year",
		"json":        "json",
	}

	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil || (!flag.Changed && key != name) {
			continue
		}
		_ = viper.BindPFlag(key, flag)
	}
}

func buildDashboard(ctx context.Context, cfg *config.Config, filters domain.Filters) (*domain.Dashboard, error) {
	source, release, err := bootstrap.Source(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer release()

	opts, err := bootstrap.DashboardOptions(cfg)
	if err != nil {
		return nil, err
	}

	service := dashboarding.NewService(dataset.NewMemo(source), nil, opts)
	return service.GetDashboard(ctx, filters)
}

func printReport(w io.Writer, dashboard *domain.Dashboard) {
	fmt.Fprintf(w, "📊 Tableau de Bord des Ventes (pays: %s, année: %s, lignes: %d)\n\n",
		dashboard.Filters.CountryValue(), dashboard.Filters.YearValue(), dashboard.Rows)

	for _, warning := range dashboard.Warnings {
		fmt.Fprintf(w, "⚠ %s\n\n", warning.Message)
	}

	cards := tablewriter.NewWriter(w)
	cards.SetHeader([]string{"KPI", "Valeur"})
	for _, card := range dashboard.Cards {
		cards.Append([]string{card.Label, card.Value})
	}
	cards.Render()

	aggs := dashboard.Aggregations
	printGroup(w, "🏆 Pays par Ventes", domain.ColCountry, domain.ColSales, aggs.TopCountriesBySales)
	printGroup(w, "💰 Pays par Profits", domain.ColCountry, domain.ColProfit, aggs.TopCountriesByProfit)

	fmt.Fprintln(w, "\n📈 Évolution des Ventes Cumulées")
	cumulative := tablewriter.NewWriter(w)
	cumulative.SetHeader([]string{domain.ColMonthName, domain.ColSales, "Cumulative Sales"})
	for _, point := range aggs.CumulativeSalesByMonth {
		cumulative.Append([]string{point.Month, utils.FormatThousands(point.Sales), utils.FormatThousands(point.Cumulative)})
	}
	cumulative.Render()

	printGroup(w, "📉 COGS vs Produits", domain.ColProduct, domain.ColCOGS, aggs.CogsByProduct)
	printGroup(w, "💹 Profits par Segment", domain.ColSegment, domain.ColProfit, aggs.ProfitBySegment)
}

func printGroup(w io.Writer, title, keyHeader, valueHeader string, items []domain.GroupTotal) {
	fmt.Fprintf(w, "\n%s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{keyHeader, valueHeader})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, item := range items {
		table.Append([]string{item.Key, utils.FormatThousands(item.Value)})
	}
	table.Render()
}
