package main

import (
	"context"
	"os"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/imtaco/xms-confctl/conference/control"
	"github.com/imtaco/xms-confctl/conference/session"
	"github.com/imtaco/xms-confctl/conference/transport"
	"github.com/imtaco/xms-confctl/conference/xms"
	"github.com/imtaco/xms-confctl/internal/config"
	"github.com/imtaco/xms-confctl/internal/httputil"
	"github.com/imtaco/xms-confctl/internal/log"
	"github.com/imtaco/xms-confctl/internal/otel"
	"github.com/imtaco/xms-confctl/internal/redis"
	redisstream "github.com/imtaco/xms-confctl/internal/stream/redis"
	"github.com/imtaco/xms-confctl/internal/workflow"
)

type Config struct {
	App     config.App            `mapstructure:"app"`
	Http    httputil.Config       `mapstructure:"http"`
	Redis   redis.Config          `mapstructure:"redis"`
	Otel    otel.Config           `mapstructure:"otel"`
	XMS     xms.Config            `mapstructure:"xms"`
	Session session.Config        `mapstructure:"session"`
	Journal control.JournalConfig `mapstructure:"journal"`
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("xms-confctl", pflag.ExitOnError)
	flags.String("xms.addr", "", "media server REST base URL, e.g. http://10.0.0.5:81")
	flags.String("xms.app_id", "", "application id sent with every request")
	flags.String("session.dtmf_mode", "", "caller key signalling: rfc2833 or sipinfo")
	flags.String("session.resolution", "", "conference layout size: cif, vga or 720p")
	flags.String("http.addr", "", "admin API listen address")
	flags.Bool("journal.enabled", false, "append processed events to a Redis stream")
	return flags
}

func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	return config.Load(&Config{}, flags, func(v *viper.Viper) {
		config.Setup(v, "app")
		redis.Setup(v, "redis")
		otel.Setup(v, "otel")
		httputil.Setup(v, "http")
		xms.Setup(v, "xms")
		session.Setup(v, "session")
		control.SetupJournal(v, "journal")

		v.SetDefault("otel.service_name", "xms-confctl")
		v.SetDefault("http.addr", "0.0.0.0:8090")
	})
}

func main() {
	flags := newFlags()
	_ = flags.Parse(os.Args[1:])

	config, err := loadConfig(flags)
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer logger.Sync()

	// global background context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting conference controller...",
		log.String("xms", config.XMS.Addr),
		log.String("dtmf_mode", config.Session.DTMFMode),
		log.String("resolution", config.Session.Resolution))

	client := xms.NewClient(config.XMS, logger.Module("XMS"))
	ctrl := session.New(config.Session, client, logger.Module("Session"))

	// The journal is optional; without it Redis is never contacted.
	var journal control.Journal
	var redisClient *goredis.Client
	if config.Journal.Enabled {
		redisClient = redis.NewClient(&config.Redis)
		if err := redis.Ping(ctx, redisClient); err != nil {
			logger.Fatal("Failed to connect to Redis", log.Error(err))
		}
		producer, err := redisstream.NewProducer(
			redisClient,
			config.Journal.Stream,
			config.Journal.MaxLen,
			logger.Module("Journal"),
		)
		if err != nil {
			logger.Fatal("Failed to create journal producer", log.Error(err))
		}
		journal = control.NewStreamJournal(producer)
	}

	reactor := control.NewReactor(ctrl, config.App.QueueSize, journal, logger.Module("Reactor"))
	listener := xms.NewListener(config.XMS, client, reactor.Enqueue, logger.Module("Listener"))

	router := transport.NewRouter(reactor, logger.Module("Router"))
	server := httputil.NewServer(&config.Http, router.Handler())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reactor.Run(gctx)
	})
	g.Go(func() error {
		return listener.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("Starting REST API server", log.String("addr", config.Http.Addr))
		return server.Listen()
	})

	// Graceful shutdown, also taken when any component exits with an error
	cleanup := func(ctx context.Context) {
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Failed to shutdown REST API server", log.Error(err))
		}
		cancel()
		if err := g.Wait(); err != nil {
			logger.Error("Component stopped with error", log.Error(err))
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Error("Error closing Redis client", log.Error(err))
			}
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(gctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
