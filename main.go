package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Hub        *api.Hub
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Info().Str("broker", a.Config.Mqtt.URL).Msg("Connected")
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("connection lost")
}

func (a *app) readConfig(configPath string) error {
	c, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.Config = c
	return nil
}

func (a *app) connect() error {
	clientID := a.Config.Mqtt.ClientID
	if clientID == "" {
		clientID = "ledtween-" + uuid.NewString()[:8]
	}
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(clientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	return nil
}

// reload swaps in the show of a freshly loaded config.
func (a *app) reload(c stream.Config) {
	if c.Strip != a.Config.Strip {
		log.Warn().Msg("strip settings changed; restart to apply them")
	}
	show, err := stream.BuildShow(c.Show, a.Config.Strip)
	if err != nil {
		log.Warn().Err(err).Msg("show rejected")
		return
	}
	a.Controller.Reload(show)
}

func (a *app) run(ctx context.Context, configPath string, watch bool) error {
	show, err := stream.BuildShow(a.Config.Show, a.Config.Strip)
	if err != nil {
		return err
	}
	a.Controller = stream.NewController(show, a.Config.Strip.FrameRate, a.Config.Strip.Crossfade)
	a.Hub = api.NewHub(a.Config.API.StaticDir)

	sinks := []stream.Sink{a.Hub}
	if a.Config.Mqtt.URL != "" {
		if err := a.connect(); err != nil {
			return err
		}
		defer a.Client.Disconnect(250)
		sinks = append(sinks, stream.NewMQTTSink(a.Client, a.Config.Mqtt.Topics.Stream))
	} else {
		log.Warn().Msg("no mqtt url configured; streaming to preview clients only")
	}

	go func() {
		if err := a.Hub.Serve(ctx, a.Config.API.Listen); err != nil {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()
	if watch {
		go func() {
			if err := stream.WatchConfig(ctx, configPath, a.reload); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("config watch stopped")
			}
		}()
	}

	err = stream.NewStreamer(a.Controller, a.Config.Strip.FrameRate, sinks...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("shutting down")
		return nil
	}
	return err
}

// pahoLogger routes the MQTT client's logging into zerolog.
type pahoLogger struct {
	event func() *zerolog.Event
}

func (l pahoLogger) Println(v ...interface{}) { l.event().Msg(fmt.Sprint(v...)) }

func (l pahoLogger) Printf(format string, v ...interface{}) { l.event().Msgf(format, v...) }

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	mqtt.ERROR = pahoLogger{log.Error}
	mqtt.CRITICAL = pahoLogger{log.Error}
	mqtt.WARN = pahoLogger{log.Warn}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		watch      bool
		listen     string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "ledtween",
		Short:        "Stream tweened LED shows to an ledrx device",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logLevel); err != nil {
				return err
			}
			a := newApp()
			if err := a.readConfig(configPath); err != nil {
				return err
			}
			if listen != "" {
				a.Config.API.Listen = listen
			}
			log.Debug().Interface("strip", a.Config.Strip).Int("segments", len(a.Config.Show.Segments)).Msg("config")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, configPath, watch)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "YAML config file.")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the show when the config file changes.")
	cmd.Flags().StringVar(&listen, "listen", "", "HTTP listen address, overriding api.listen.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error).")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
