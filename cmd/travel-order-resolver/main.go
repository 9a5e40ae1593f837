package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	lib "github.com/theoremus-urban-solutions/travel-order-resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
	"github.com/theoremus-urban-solutions/travel-order-resolver/formatter"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
)

func main() {
	mode := flag.String("mode", "resolve", "resolve|journeys|serve|generate")
	configPath := flag.String("config", "", "config file path (default config.yml)")
	feedName := flag.String("feed", "", "feed name from config.feeds[]")
	input := flag.String("input", "", "input file with id,sentence lines (default stdin)")
	output := flag.String("output", "", "output file for generate mode (default stdout)")
	workers := flag.Int("workers", 0, "batch workers (default from config)")
	gtfsPath := flag.String("gtfs", "", "GTFS zip path or URL (overrides config)")
	cities := flag.String("cities", "", "city list path (overrides config)")
	stations := flag.String("stations", "", "station table path (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	count := flag.Int("count", 500, "sentences to generate")
	seed := flag.Int64("seed", 42, "generator seed")
	logLevel := flag.String("log", "info", "log level: debug|info|warn|error")
	flag.Parse()

	lib.InitLogging(*logLevel)
	if err := config.LoadAppConfigFrom(*configPath); err != nil {
		if *configPath != "" {
			panic(err)
		}
		zap.L().Warn("no config file found, using defaults", zap.Error(err))
		config.LoadDefaults()
	}
	if *gtfsPath != "" {
		config.Config.GTFS = config.GTFSConfig{LocalPath: *gtfsPath}
		if isURL(*gtfsPath) {
			config.Config.GTFS = config.GTFSConfig{StaticURL: *gtfsPath}
		}
		config.Config.Feeds = nil
	}
	if *cities != "" {
		config.Config.Gazetteer.CityListPath = *cities
	}
	if *stations != "" {
		config.Config.Gazetteer.StationTablePath = *stations
	}
	if *port > 0 {
		config.Config.Server.Port = *port
	}

	switch *mode {
	case "resolve":
		svc, err := lib.NewServiceFromConfig(*feedName, false)
		if err != nil {
			panic(err)
		}
		orders, err := readOrders(*input)
		if err != nil {
			panic(err)
		}
		for _, out := range svc.ProcessBatch(orders, *workers, false) {
			fmt.Println(formatter.ResolverLine(out.Resolution))
		}
		svc.Tracker().LogSummary()
	case "journeys":
		svc, err := lib.NewServiceFromConfig(*feedName, true)
		if err != nil {
			panic(err)
		}
		orders, err := readOrders(*input)
		if err != nil {
			panic(err)
		}
		for _, out := range svc.ProcessBatch(orders, *workers, true) {
			if out.Plan == nil {
				fmt.Println(formatter.ResolverLine(out.Resolution))
				continue
			}
			for _, line := range formatter.JourneyLines(*out.Plan) {
				fmt.Println(line)
			}
		}
		svc.Tracker().LogSummary()
	case "serve":
		svc, err := lib.NewServiceFromConfig(*feedName, true)
		if err != nil {
			panic(err)
		}
		lib.StartServer(svc)
		lib.HandleGracefulShutdown()
	case "generate":
		cityNames, err := gazetteer.LoadCityList(config.Config.Gazetteer.CityListPath)
		if err != nil {
			panic(err)
		}
		w := os.Stdout
		if *output != "" {
			w, err = os.Create(*output)
			if err != nil {
				panic(err)
			}
			defer w.Close()
		}
		gen := newCorpusGenerator(cityNames, *seed)
		if err := gen.WriteCorpus(w, *count); err != nil {
			panic(err)
		}
	default:
		panic("unknown mode")
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
