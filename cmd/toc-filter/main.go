package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"toc-filter/pkg/batch"
	"toc-filter/pkg/config"
	"toc-filter/pkg/render"
	"toc-filter/pkg/toc"
)

func main() {
	// mcp-server subcommand gets its own flag set
	if len(os.Args) > 1 && os.Args[1] == "mcp-server" {
		runMcpServer(os.Args[2:])
		return
	}

	// --- Early Initialization & Flags ---
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel) // Default level

	configFileFlag := flag.String("config", "config.yaml", "Path to YAML config file")
	profileFlag := flag.String("profile", "", "Profile key from config file (optional)")
	logLevelFlag := flag.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")
	formatFlag := flag.String("format", "", "Input format: html or markdown (overrides config)")
	emitFlag := flag.String("emit", "", "Output format: html or markdown (defaults to input format)")
	outputFlag := flag.String("output", "", "Output directory for batch mode (overrides config)")
	flag.Parse()

	// --- Logger Configuration ---
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", *logLevelFlag, err)
	} else {
		log.SetLevel(level)
	}

	// --- Load Application Configuration ---
	appCfg, err := loadConfigOrDefaults(*configFileFlag, log)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// --- Select Profile ---
	var profileCfg config.ProfileConfig
	if *profileFlag != "" {
		var ok bool
		profileCfg, ok = appCfg.Profiles[*profileFlag]
		if !ok {
			log.Fatalf("Error: Profile key '%s' not found in config file '%s'", *profileFlag, *configFileFlag)
		}
	}

	opts := batch.OptionsFromConfig(profileCfg, *appCfg)

	format := config.GetEffectiveFormat(profileCfg, *appCfg)
	if *formatFlag != "" {
		format = *formatFlag
	}
	if format != config.FormatHTML && format != config.FormatMarkdown {
		log.Fatalf("Error: unsupported format '%s'", format)
	}
	emit := format
	if *emitFlag != "" {
		emit = *emitFlag
	}
	if emit != config.FormatHTML && emit != config.FormatMarkdown {
		log.Fatalf("Error: unsupported emit format '%s'", emit)
	}

	inputs := flag.Args()

	// --- Stream Mode (stdin -> stdout) ---
	if len(inputs) == 0 {
		raw, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			log.Fatalf("Failed to read stdin: %v", readErr)
		}
		out, transformErr := transformDocument(string(raw), opts, format, emit)
		if transformErr != nil {
			log.Fatalf("Transform failed: %v", transformErr)
		}
		fmt.Print(out)
		return
	}

	// --- Batch Mode ---
	outDir := config.GetEffectiveOutputDir(profileCfg, *appCfg)
	if *outputFlag != "" {
		outDir = *outputFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := batch.NewProcessor(*appCfg, opts, format, emit, outDir,
		log.WithField("component", "batch"))
	results, runErr := processor.Run(ctx, inputs)
	if runErr != nil {
		log.Errorf("Batch aborted: %v", runErr)
		os.Exit(1)
	}
	for _, r := range results {
		if !r.Success {
			os.Exit(1)
		}
	}
}

// transformDocument runs one document through the full pipeline:
// optional markdown rendering, the TOC insertion, and optional
// back-conversion to markdown.
func transformDocument(doc string, opts toc.Options, format, emit string) (string, error) {
	var err error
	if format == config.FormatMarkdown {
		doc, err = render.MarkdownToHTML([]byte(doc))
		if err != nil {
			return "", err
		}
	}
	out := toc.Insert(doc, opts)
	if emit == config.FormatMarkdown {
		out, err = render.HTMLToMarkdown(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// loadConfig reads and validates a YAML config file
func loadConfig(path string) (*config.AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file '%s': %w", path, err)
	}
	var appCfg config.AppConfig
	if err := yaml.Unmarshal(yamlFile, &appCfg); err != nil {
		return nil, fmt.Errorf("parse config file '%s': %w", path, err)
	}
	warnings, err := appCfg.Validate()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logrus.Warn(w)
	}
	return &appCfg, nil
}

// loadConfigOrDefaults loads the config file when present; a missing
// default-path file falls back to built-in defaults rather than failing.
func loadConfigOrDefaults(path string, log *logrus.Logger) (*config.AppConfig, error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		log.Debugf("Config file '%s' not found, using defaults", path)
		appCfg := &config.AppConfig{}
		if _, err := appCfg.Validate(); err != nil {
			return nil, err
		}
		return appCfg, nil
	}
	return loadConfig(path)
}
