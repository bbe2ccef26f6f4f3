package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/K-Phoen/grabana"
	"github.com/K-Phoen/grabana/axis"
	"github.com/K-Phoen/grabana/graph"
	"github.com/K-Phoen/grabana/row"
	"github.com/K-Phoen/grabana/table"
	"github.com/K-Phoen/grabana/target/prometheus"
	"github.com/K-Phoen/grabana/variable/interval"
	"github.com/fagongzi/log"
)

var (
	addr   = flag.String("grafana", "127.0.0.1:3000", "Grafana api address")
	key    = flag.String("key", "", "Grafana api key")
	folder = flag.String("folder", "Abacus", "Abacus dashboard folder")
	ds     = flag.String("ds", "Prometheus", "Prometheus datasource name")
)

func main() {
	flag.Parse()
	log.InitLog()

	cli := grabana.NewClient(http.DefaultClient, *addr, *key)
	f, err := createFolder(cli)
	if err != nil {
		log.Fatalf("create abacus dashboard folder failed with %+v", err)
	}

	err = createDashboard(cli, f)
	if err != nil {
		log.Fatalf("create abacus dashboard failed with %+v", err)
	}

	log.Infof("create abacus dashboard successful")
	os.Exit(0)
}

func createFolder(cli *grabana.Client) (*grabana.Folder, error) {
	f, err := cli.GetFolderByTitle(context.Background(), *folder)
	if err != nil && err != grabana.ErrFolderNotFound {
		return nil, err
	}

	if f == nil {
		f, err = cli.CreateFolder(context.Background(), *folder)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func createDashboard(cli *grabana.Client, f *grabana.Folder) error {
	db := grabana.NewDashboardBuilder("Abacus Status",
		grabana.AutoRefresh("5s"),
		grabana.Tags([]string{"generated"}),
		grabana.VariableAsInterval(
			"interval",
			interval.Values([]string{"30s", "1m", "5m", "10m", "30m", "1h", "6h", "12h"}),
		),
		requestRow(),
		expressionRow(),
		sessionRow())

	_, err := cli.UpsertDashboard(context.Background(), f, db)
	return err
}

func requestRow() grabana.DashboardBuilderOption {
	return grabana.Row(
		"Request status",
		withGraph("Requests received", 6,
			"sum(rate(abacus_api_request_received_total[$interval])) by (type)",
			"{{type}}"),
		withGraph("Request result", 6,
			"sum(rate(abacus_api_request_result_total[$interval])) by (type, result)",
			"{{type}}({{result}})"),
	)
}

func expressionRow() grabana.DashboardBuilderOption {
	return grabana.Row(
		"Evaluator status",
		withGraph("Input bytes", 4,
			"sum(rate(abacus_evaluator_input_bytes_total[$interval])) by (grammar)",
			"{{grammar}}"),
		withGraph("Expressions", 4,
			"sum(rate(abacus_evaluator_expression_total[$interval])) by (grammar, result)",
			"{{grammar}}({{result}})"),
		withGraph("Divide by zero", 4,
			"sum(rate(abacus_evaluator_expression_total{result=\"divide_by_zero\"}[$interval])) by (grammar)",
			"{{grammar}}"),
	)
}

func sessionRow() grabana.DashboardBuilderOption {
	return grabana.Row(
		"Sessions and terminals",
		withTable("Sessions", 4,
			"sum(abacus_api_session_total)",
			"total"),
		withTable("Active sessions", 4,
			"sum(abacus_api_session_active_total)",
			"active"),
		withTable("Terminals", 4,
			"sum(abacus_api_terminal_total)",
			"terminals"),
	)
}

func withGraph(title string, span float32, pql string, legend string, opts ...axis.Option) row.Option {
	return row.WithGraph(
		title,
		graph.Span(span),
		graph.Height("400px"),
		graph.DataSource(*ds),
		graph.WithPrometheusTarget(
			pql,
			prometheus.Legend(legend),
		),
		graph.LeftYAxis(opts...),
	)
}

func withTable(title string, span float32, pql string, legend string) row.Option {
	return row.WithTable(
		title,
		table.Span(span),
		table.Height("400px"),
		table.DataSource(*ds),
		table.WithPrometheusTarget(
			pql,
			prometheus.Legend(legend)),
		table.AsTimeSeriesAggregations([]table.Aggregation{
			{Label: "Current", Type: table.Current},
		}),
	)
}
