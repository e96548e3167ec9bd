package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/holiday"
	"github.com/username/holiday-calendar/pkg/dateutil"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-calendar",
		Short: "Public and bank holiday calendar",
		Long:  "Compute the public and bank holidays observed in a jurisdiction for a given year, including observed-date shifts for holidays falling on excluded weekdays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(jurisdictionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	var (
		jurisdiction string
		year         int
		noObserved   bool
		format       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the holidays of a jurisdiction for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			code := jurisdiction
			if code == "" {
				code = cfg.Holidays.Jurisdiction
			}
			if year == 0 {
				year = time.Now().Year()
			}
			observed := cfg.Holidays.Observed && !noObserved

			svc := calendar.NewService(calendar.ProviderFunc(holiday.Request), logger)
			set, err := svc.Holidays(code, year, observed)
			if err != nil {
				return err
			}

			logger.Info("Listing holidays",
				zap.String("jurisdiction", set.Jurisdiction()),
				zap.Int("year", year),
				zap.Bool("observed", observed),
				zap.Int("holidays", set.Len()))

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(set.Entries())
			case "text":
				if set.Len() == 0 {
					fmt.Printf("No holidays in %s for %d\n", set.Jurisdiction(), year)
					return nil
				}
				for date, name := range set.All() {
					fmt.Printf("%s  %s  %s\n", date.Format("2006-01-02"), date.Format("Mon"), name)
				}
				return nil
			default:
				return fmt.Errorf("unknown format: %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Jurisdiction code (default from config)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current year)")
	cmd.Flags().BoolVar(&noObserved, "no-observed", false, "Disable observed-date shifting")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

func checkCmd() *cobra.Command {
	var (
		jurisdiction string
		dateStr      string
		noObserved   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a date is a holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			code := jurisdiction
			if code == "" {
				code = cfg.Holidays.Jurisdiction
			}
			observed := cfg.Holidays.Observed && !noObserved

			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			svc := calendar.NewService(calendar.ProviderFunc(holiday.Request), logger)
			ok, name, err := svc.IsHoliday(code, date, observed)
			if err != nil {
				return err
			}

			if ok {
				fmt.Printf("%s is a holiday in %s: %s\n", date.Format("2006-01-02"), code, name)
			} else {
				fmt.Printf("%s is not a holiday in %s\n", date.Format("2006-01-02"), code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Jurisdiction code (default from config)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Date to check (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&noObserved, "no-observed", false, "Disable observed-date shifting")
	cmd.MarkFlagRequired("date")

	return cmd
}

func jurisdictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jurisdictions",
		Short: "List registered jurisdiction codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range holiday.Codes() {
				fmt.Println(code)
			}
			return nil
		},
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
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
