package main

import (
	"flag"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/metric"
	"code.cloudfoundry.org/servicelifecycle/runner"
	"code.cloudfoundry.org/servicelifecycle/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"
)

var configPath = flag.String(
	"config",
	"",
	"path to a YAML settings file passed to every service",
)

var metricsAddress = flag.String(
	"metricsAddress",
	"127.0.0.1:9090",
	"host:port to serve prometheus metrics on",
)

func main() {
	lagerflags.AddFlags(flag.CommandLine)
	flag.Parse()

	logger, _ := lagerflags.New("lifecycled")

	cfg := config.Empty()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			logger.Fatal("failed-to-load-config", err, lager.Data{"path": *configPath})
		}
	}

	registry := prometheus.NewRegistry()
	err := metric.Register(registry)
	if err != nil {
		logger.Fatal("failed-to-register-metrics", err)
	}

	composite := buildComposite(logger, cfg)

	members := grouper.Members{
		{Name: "metrics", Runner: http_server.New(*metricsAddress, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))},
		{Name: "services", Runner: runner.New(composite, cfg, logger)},
	}

	group := grouper.NewOrdered(os.Interrupt, members)
	monitor := ifrit.Invoke(sigmon.New(group))

	logger.Info("started", lager.Data{"services": len(composite.Services())})

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}

func buildComposite(logger lager.Logger, cfg config.Config) *service.CompositeService {
	name := cfg.Get("composite.name")
	if name == "" {
		name = "lifecycled"
	}

	composite := service.NewCompositeService(name, logger)
	for _, serviceName := range cfg.List("composite.services") {
		serviceName := serviceName
		beatLogger := logger.Session("beat", lager.Data{"service": serviceName})

		composite.AddService(service.NewHeartbeatService(serviceName, clock.NewClock(), logger, func() error {
			beatLogger.Debug("beat")
			return nil
		}))
	}

	return composite
}
