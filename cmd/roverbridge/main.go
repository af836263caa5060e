package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/l1/env"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()

	conf := env.NewConfig()
	if conf.Info.Meta.Description == "" {
		conf.Info.Meta.Description = "Rover Bridge"
	}
	ctl, conn := conf.MustNewController(context.Background())
	bridge, err := conf.NewBridge(ctl)
	if err != nil {
		log.Fatalln(err)
	}

	runner := fx.NewRunner().HandleSignals()
	runner.Go(bridge, fx.NamedRun("rover", conf.NewReceiver(conn, bridge)))
	if conf.ListenAddr != "" {
		telemetry, err := conf.ListenTelemetry()
		if err != nil {
			log.Fatalln(err)
		}
		runner.Go(fx.NamedRun("telemetry", conf.NewReceiver(telemetry, bridge)))
	}
	if srv := conf.MetricsServer(); srv != nil {
		runner.Go(srv)
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
