package main

import (
	"context"
	"flag"
	"log"
	"strings"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l0/rover"
	"github.com/robotalks/rover.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/rover.go/pkg/l1/env"
	"github.com/robotalks/rover.go/pkg/l1/msgs"
)

var (
	watchMQTT bool
)

func init() {
	env.SetupFlags()
	flag.BoolVar(&watchMQTT, "watch-mqtt", watchMQTT, "Watch bridges on MQTT instead of UDP telemetry.")
}

func logMessage(_ context.Context, msg rover.Message) {
	log.Printf("%s/%s: %v", msg.Subsystem(), msg.Part(), msg)
}

func watchTopics(ctx context.Context, brokerURL string) error {
	q, err := mqtt.NewQueueFromURL(brokerURL)
	if err != nil {
		return err
	}
	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		switch {
		case strings.HasSuffix(topic, "/"+mqtt.TopicMeta):
			log.Printf("%s: %s", topic, string(payload))
			return
		case strings.Contains(topic, "/frames/"):
			msg, err := rover.Decode(payload)
			if err != nil {
				log.Printf("%s: bad frame [% x]: %v", topic, payload, err)
				return
			}
			log.Printf("%s: %v", topic, msg)
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: #%d %T %s", topic, typed.Sequence, msg, msg.String())
	}))
	if err := mqtt.WaitToken(ctx, q.Connect()); err != nil {
		return err
	}
	defer q.Close()
	<-ctx.Done()
	return ctx.Err()
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	conf := env.NewConfig()
	runner := fx.NewRunner().HandleSignals()
	if watchMQTT {
		runner.Go(fx.NamedRun("mqtt", fx.RunFunc(func(ctx context.Context) error {
			return watchTopics(ctx, conf.MQTTBrokerURL)
		})))
	} else {
		conn, err := conf.ListenTelemetry()
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("listening on %s", conn.LocalAddr())
		runner.Go(conf.NewReceiver(conn, link.HandlerFunc(logMessage)))
	}
	if srv := conf.MetricsServer(); srv != nil {
		runner.Go(srv)
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
