package main

import (
	"log/slog"
	"os"

	"sysreport/internal/conf"
	"sysreport/internal/report"
	"sysreport/internal/system"
)

func main() {
	loadErr := conf.LoadConfig(conf.ResolvePath())

	// Degradation is silent unless Debug is set
	logger := slog.New(slog.DiscardHandler)
	if conf.IsDebug() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	system.SetLogger(logger)
	if loadErr != nil {
		logger.Warn("using default config", "path", conf.Path, "err", loadErr)
	}

	sources := conf.GetSources()
	host := system.NewHost(system.HostOptions{OSReleasePaths: sources.OSReleasePaths})
	r := system.Collect(host, system.CollectOptions{UserEnv: sources.UserEnv})

	_ = report.Write(os.Stdout, r, report.FromConf(conf.GetReport()))
}
