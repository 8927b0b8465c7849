package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/rabbitcabbage/blogconfig/internal/application"
	"github.com/rabbitcabbage/blogconfig/internal/config"
	"github.com/rabbitcabbage/blogconfig/internal/export"
	"github.com/rabbitcabbage/blogconfig/internal/logging"
	"github.com/rabbitcabbage/blogconfig/internal/override"
	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
)

var signalNotify = signal.Notify

// cli holds the parsed flags for every command.
type cli struct {
	app *kingpin.Application

	configFile   *string
	envFile      *string
	overrideFile *string
	basePath     *string
	logLevel     *string

	show       *kingpin.CmdClause
	showFormat *string
	showMinify *bool

	validate *kingpin.CmdClause

	serve          *kingpin.CmdClause
	port           *string
	rateLimitRPS   *float64
	rateLimitBurst *int
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("siteconfig", "Blog site configuration - merges the site override over the template defaults")}

	c.configFile = c.app.Flag("config", "Path to YAML configuration file").String()
	c.envFile = c.app.Flag("env-file", "Dotenv file providing BASE_URL and friends").String()
	c.overrideFile = c.app.Flag("override", "Site override file (yaml, toml or json); defaults to the built-in override").String()
	c.basePath = c.app.Flag("base-path", "Deployment base path substituted for ${BASE_URL}").String()
	c.logLevel = c.app.Flag("log-level", "Log level (debug, info, warn, error)").String()

	c.show = c.app.Command("show", "Print the resolved site configuration").Default()
	c.showFormat = c.show.Flag("format", "Output format").Short('f').Enum(export.Formats()...)
	c.showMinify = c.show.Flag("minify", "Minify JSON output").Bool()

	c.validate = c.app.Command("validate", "Check the resolved site configuration against the generator schema")

	c.serve = c.app.Command("serve", "Serve the resolved site configuration over HTTP")
	c.port = c.serve.Flag("port", "HTTP port exposed by the service").String()
	c.rateLimitRPS = c.serve.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	c.rateLimitBurst = c.serve.Flag("rate-limit-burst", "Burst capacity for rate limiter").Default("-1").Int()

	return c
}

// overrides translates parsed flags into config overrides. Unset flags stay nil.
func (c *cli) overrides() *config.CLIOverrides {
	o := &config.CLIOverrides{
		ConfigFile:     *c.configFile,
		EnvFile:        *c.envFile,
		OverrideFile:   c.overrideFile,
		BasePath:       c.basePath,
		Port:           c.port,
		Format:         c.showFormat,
		LogLevel:       c.logLevel,
		RateLimitRPS:   c.rateLimitRPS,
		RateLimitBurst: c.rateLimitBurst,
	}
	if *c.showMinify {
		o.Minify = c.showMinify
	}
	return o
}

func main() {
	c := newCLI()
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	cfg, err := config.Load(c.overrides())
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	loader := override.NewLoader(nil)

	switch command {
	case c.validate.FullCommand():
		if err := runValidate(cfg, loader, os.Stdout, logger); err != nil {
			_ = logger.Sync()
			os.Exit(1)
		}
	case c.serve.FullCommand():
		site, err := application.ResolveSite(cfg, loader)
		if err != nil {
			logger.Fatal("failed to resolve site configuration", zap.Error(err))
		}

		app, err := application.New(cfg, site, logger)
		if err != nil {
			logger.Fatal("failed to initialize application", zap.Error(err))
		}

		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}

		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	default:
		if err := runShow(cfg, loader, os.Stdout); err != nil {
			logger.Fatal("failed to print site configuration", zap.Error(err))
		}
	}
}

func runShow(cfg config.Config, loader *override.Loader, out io.Writer) error {
	site, err := application.ResolveSite(cfg, loader)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	return export.Encode(out, site, format, cfg.Minify)
}

// runValidate reports every schema violation on out, one per line.
func runValidate(cfg config.Config, loader *override.Loader, out io.Writer, logger *zap.Logger) error {
	userCfg, err := application.LoadOverride(cfg, loader)
	if err != nil {
		logger.Error("failed to load override", zap.Error(err))
		return err
	}

	site := siteconfig.ResolveBasePath(siteconfig.Merge(siteconfig.Defaults(), userCfg), cfg.BasePath)
	verr := siteconfig.Validate(site)
	if verr == nil {
		fmt.Fprintln(out, "ok")
		logger.Debug("site configuration is valid", zap.String("title", site.Site.Title))
		return nil
	}

	violations := siteconfig.Violations(verr)
	for _, v := range violations {
		fmt.Fprintln(out, v)
	}
	logger.Error("site configuration is invalid", zap.Int("violations", len(violations)))
	return errors.New("site configuration is invalid")
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
