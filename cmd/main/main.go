package main

import (
	"flag"
	"fmt"
	"os"

	"campaign-analyst/internal/campaign/model"
	"campaign-analyst/internal/campaign/report"
	"campaign-analyst/internal/campaign/schema"
	"campaign-analyst/internal/campaign/service"
	"campaign-analyst/internal/config"
	"campaign-analyst/internal/fileio"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Analista de campañas (rule-based).\n\nUsage: %s <file>\n\n"+
				"  <file>  ruta al fichero Excel o CSV con los datos de campaña\n",
			os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := config.SetupLogger(cfg)

	tbl, err := fileio.Open(path, cfg.HeaderRow)
	if err != nil {
		logger.Fatal().Err(err).Str("file", path).Msg("load")
	}
	logger.Info().Str("file", path).Int("rows", len(tbl.Records)).Msg("loaded")

	schema.Normalize(tbl)
	ds := service.Build(tbl)
	if err := service.Derive(ds); err != nil {
		logger.Fatal().Err(err).Msg("metrics")
	}
	logger.Debug().Int("campaigns", len(ds.Rows)).Bool("has_cpa", ds.Has(model.ColCPA)).Msg("metrics derived")

	means := service.ComputeMeans(ds)
	rep := report.New(os.Stdout)
	rep.Summary(means)
	for _, metric := range model.RankableMetrics {
		if metric == model.ColCPA && !ds.Has(model.ColCPA) {
			continue
		}
		rep.TopBottom(ds, metric, cfg.TopN)
	}
	rep.Recommendations(ds, means)
}
