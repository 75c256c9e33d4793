package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/NimbleBrainInc/mcp-abstract/abstractapi"
	"github.com/NimbleBrainInc/mcp-abstract/config"
	"github.com/NimbleBrainInc/mcp-abstract/tools"
)

const version = "1.0.0"

var (
	app = kingpin.New(
		"mcp-abstract",
		"MCP server for the Abstract API suite")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("MCP_ABSTRACT_DEBUG").
		Bool()
	stdio = app.Flag("stdio", "Serve MCP over stdio instead of HTTP.").
		Envar("MCP_ABSTRACT_STDIO").
		Bool()
	listen = app.Flag("listen", "host:port to listen on (overrides the config file).").
		Envar("MCP_ABSTRACT_LISTEN").
		String()
	configFile = app.Flag("config-path", "Path to the config.").
			Short('c').
			File()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := godotenv.Load(); err == nil {
		log.Debug("Environment was loaded from the .env file")
	}

	conf := config.Default()

	if *configFile != nil {
		parsed, err := config.Parse(*configFile)
		if err != nil {
			log.Fatalf(err.Error())
		}

		conf = parsed
	}

	registry := tools.NewRegistry(abstractapi.Opts{
		Timeout:   conf.GetHTTPTimeout(),
		UserAgent: conf.GetUserAgent(),
	})
	defer registry.Close()

	mcpServer := tools.NewServer(registry, version)

	if *stdio {
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf(err.Error())
		}

		return
	}

	listenAddr := conf.GetListen()
	if *listen != "" {
		listenAddr = *listen
	}

	httpServer := &http.Server{
		Addr:    listenAddr,
		Handler: tools.NewHTTPHandler(mcpServer),
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		<-sigs

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		httpServer.Shutdown(ctx) // nolint: errcheck
	}()

	log.WithFields(log.Fields{
		"listen": listenAddr,
	}).Info("Starting HTTP server")

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(err.Error())
	}
}
