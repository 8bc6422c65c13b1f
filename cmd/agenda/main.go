package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/username/agenda/internal/agenda"
	"github.com/username/agenda/internal/calendar"
	"github.com/username/agenda/internal/config"
	"github.com/username/agenda/internal/layout"
	"github.com/username/agenda/internal/locale"
	"github.com/username/agenda/internal/pdf"
	"github.com/username/agenda/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agenda",
		Short: "Yearly PDF planner generator",
		Long:  "Generate a cross-linked PDF planner with a year overview, month pages and one page per day",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
					logger.Warn("Failed to open log file, logging to console",
						zap.String("file", cfg.Log.File),
						zap.Error(err))
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ./agenda.yaml)")

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Output file (default agenda-<year>.pdf)")
	flags.IntP("year", "y", dateutil.Today().Year(), "Year of the agenda")
	flags.Float64P("linewidth", "w", 0.1, "Width of the ruled lines on day pages")
	flags.Float64P("linecolor", "c", 200, "Gray level of the ruled lines (0-255)")
	flags.String("school-zone", "", "French school holiday zone: "+strings.Join(calendar.SchoolZones, ", "))
	flags.String("bank-holidays", "", "French bank holiday zone, e.g. Métropole or Alsace-Moselle")
	flags.String("locale", "", "Locale of day and month names (default from LC_ALL, LC_TIME or LANG)")
	flags.String("events", "", "YAML file with additional events")
	flags.String("fonts-dir", "", "Directory with DejaVuSansCondensed.ttf and DejaVuSansCondensed-Bold.ttf")
	flags.String("log-file", "", "Write JSON logs to this file instead of the console")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("no-progress", false, "Do not show the progress bar")

	rootCmd.AddCommand(zonesCmd())

	return rootCmd
}

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the known holiday zones",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "School holiday zones (--school-zone):")
			for _, zone := range calendar.SchoolZones {
				fmt.Fprintf(out, "  %s\n", zone)
			}
			fmt.Fprintln(out, "Bank holiday zones (--bank-holidays):")
			for _, zone := range calendar.BankZones {
				fmt.Fprintf(out, "  %s\n", zone)
			}
		},
	}
}

func generate() error {
	names := locale.FromEnv()
	if cfg.Locale != "" {
		names = locale.New(cfg.Locale)
	}

	doc, err := pdf.New(pdf.Options{
		Title:    fmt.Sprintf("Agenda for %04d", cfg.Year),
		Author:   "agenda",
		Creator:  "agenda",
		FontsDir: cfg.Render.FontsDir,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	generator := agenda.NewGenerator(doc, names, initializeCollector(cfg), logger)
	if cfg.Progress && isTerminal(os.Stderr) {
		generator.SetProgress(os.Stderr)
	}

	result, err := generator.Generate(agenda.Options{
		Year:       cfg.Year,
		Output:     cfg.OutputPath(),
		SchoolZone: cfg.Holidays.SchoolZone,
		BankZone:   cfg.Holidays.BankZone,
		EventsFile: cfg.EventsFile,
		Style: layout.Style{
			LineWidth: cfg.Render.LineWidth,
			LineColor: cfg.Render.LineColor,
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ %s: %d pages, %d events\n", result.Output, result.Pages, result.Events)
	return nil
}

func initializeCollector(cfg *config.Config) *calendar.Collector {
	if !cfg.Holidays.Enabled() {
		return nil
	}

	var school calendar.Provider = calendar.NewSchoolCalendar(
		cfg.Holidays.SchoolAPIURL,
		cfg.Holidays.CacheDir,
		cfg.Holidays.GetCacheTTL(),
		logger,
	)

	if cfg.Holidays.SchoolFallbackFile != "" {
		fallbackCal := calendar.NewFileCalendar(cfg.Holidays.SchoolFallbackFile, logger)
		compositeCal := calendar.NewCompositeCalendar(school, fallbackCal, logger)

		// Load fallback calendar
		if err := compositeCal.LoadFallback(); err != nil {
			logger.Warn("Failed to load fallback calendar, continuing with API only",
				zap.Error(err))
		}

		school = compositeCal
	}

	return calendar.NewCollector(school, calendar.NewBankCalendar(), logger)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
