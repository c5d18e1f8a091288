package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vantagelite/api"
	"vantagelite/cmd"
	"vantagelite/internal/app"
	"vantagelite/internal/config"
	"vantagelite/internal/logger"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	configFile string

	servePort int

	backtestSymbol    string
	backtestWindow    int
	backtestAltWindow int
	backtestDays      int
	backtestUseReal   bool
	backtestJson      bool
	backtestCsv       bool

	presetSymbol    string
	presetWindow    int
	presetAltWindow int
	presetDays      int

	apiHandler *api.ApiHandler
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vantage",
	Short: "Moving average backtest toolkit",
	Long:  `Runs simple moving average crossover backtests, manages saved presets and serves the http api.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		apiHandler, cfg, err = cmd.InitializeDependencies(configFile)
		if err != nil {
			return fmt.Errorf("failed to initialize dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cmd.CloseDependencies(apiHandler)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the http api",
	RunE: func(_ *cobra.Command, _ []string) error {
		port := cfg.Port
		if servePort != 0 {
			port = servePort
		}
		return apiHandler.StartApi(port)
	},
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a single backtest and print the result",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

		result, err := apiHandler.BacktestHandler.Run(ctx, app.BacktestInput{
			Symbol:    backtestSymbol,
			Window:    backtestWindow,
			AltWindow: backtestAltWindow,
			Days:      backtestDays,
			UseReal:   backtestUseReal,
		})
		if err != nil {
			return err
		}

		if backtestJson {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if backtestCsv {
			type row struct {
				Step   int     `csv:"step"`
				Date   string  `csv:"date"`
				Close  float64 `csv:"close"`
				Equity float64 `csv:"equity"`
			}
			rows := make([]row, 0, len(result.Prices))
			for i, price := range result.Prices {
				rows = append(rows, row{
					Step:   i,
					Date:   price.Date.Format("2006-01-02"),
					Close:  price.Close,
					Equity: result.EquityCurve[i].Equity,
				})
			}
			out, err := gocsv.MarshalString(&rows)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		fmt.Printf("symbol:            %s\n", result.Symbol)
		fmt.Printf("days:              %d (%d points)\n", result.Days, result.NumPoints)
		fmt.Printf("buy and hold:      %.2f%%\n", result.BuyAndHoldReturnPct)
		fmt.Printf("sma %-3d strategy:  %.2f%%\n", result.Window, result.SmaStrategyReturnPct)
		fmt.Printf("sma %-3d strategy:  %.2f%%\n", result.AltWindow, result.AltSmaStrategyReturnPct)
		fmt.Printf("max drawdown:      %.2f%%\n", result.MaxDrawdownPct)
		fmt.Printf("volatility:        %.2f%%\n", result.VolatilityPct)
		fmt.Printf("sharpe like:       %.4f\n", result.SharpeLike)
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved parameter presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(_ *cobra.Command, _ []string) error {
		presets, err := apiHandler.PresetHandler.ListPresets(context.Background())
		if err != nil {
			return err
		}
		for _, p := range presets {
			fmt.Printf("%s  %-10s window=%d alt=%d days=%d  %s\n",
				p.ID, p.Symbol, p.Window, p.AltWindow, p.Days,
				p.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a parameter preset",
	RunE: func(_ *cobra.Command, _ []string) error {
		preset, err := apiHandler.PresetHandler.SavePreset(context.Background(), app.SavePresetInput{
			Symbol:    presetSymbol,
			Window:    presetWindow,
			AltWindow: presetAltWindow,
			Days:      presetDays,
		})
		if err != nil {
			return err
		}
		fmt.Printf("saved preset %s\n", preset.ID)
		return nil
	},
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := apiHandler.PresetHandler.DeletePreset(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to yaml config file")

	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port, defaults to the configured port")

	backtestCmd.Flags().StringVar(&backtestSymbol, "symbol", "DUMMY", "ticker symbol")
	backtestCmd.Flags().IntVar(&backtestWindow, "window", 5, "primary sma window")
	backtestCmd.Flags().IntVar(&backtestAltWindow, "alt-window", 10, "comparison sma window")
	backtestCmd.Flags().IntVar(&backtestDays, "days", 30, "trading days to simulate")
	backtestCmd.Flags().BoolVar(&backtestUseReal, "use-real", false, "fetch real prices from the vendor")
	backtestCmd.Flags().BoolVar(&backtestJson, "json", false, "print the full result as json")
	backtestCmd.Flags().BoolVar(&backtestCsv, "csv", false, "print the price and equity series as csv")

	presetsSaveCmd.Flags().StringVar(&presetSymbol, "symbol", "DUMMY", "ticker symbol")
	presetsSaveCmd.Flags().IntVar(&presetWindow, "window", 5, "primary sma window")
	presetsSaveCmd.Flags().IntVar(&presetAltWindow, "alt-window", 10, "comparison sma window")
	presetsSaveCmd.Flags().IntVar(&presetDays, "days", 30, "trading days to simulate")

	presetsCmd.AddCommand(presetsListCmd, presetsSaveCmd, presetsDeleteCmd)
	rootCmd.AddCommand(serveCmd, backtestCmd, presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
