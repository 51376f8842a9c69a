package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trading-assistant/internal/aggregate"
	"trading-assistant/internal/dateparse"
)

func main() {
	var configPath, dataDir string
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:           "assistant",
		Short:         "Natural-language assistant for daily trade logs",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "override data directory")

	askCmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			app, err := initializeSystem(configPath, dataDir)
			if err != nil {
				return err
			}
			defer app.Shutdown(context.Background())

			result := app.Assistant.ProcessQuery(context.Background(), strings.Join(args, " "))
			if asJSON {
				b, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}
			fmt.Println(result.Response)
			return nil
		},
	}
	askCmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive question loop on stdin",
		RunE: func(c *cobra.Command, args []string) error {
			app, err := initializeSystem(configPath, dataDir)
			if err != nil {
				return err
			}
			defer app.Shutdown(context.Background())

			fmt.Println("Ask me about your trade logs (empty line or Ctrl-D to exit).")
			sc := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !sc.Scan() {
					break
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					break
				}
				result := app.Assistant.ProcessQuery(context.Background(), line)
				fmt.Println(result.Response)
				fmt.Println()
			}
			return sc.Err()
		},
	}

	datesCmd := &cobra.Command{
		Use:   "dates",
		Short: "List the dates with trading data",
		RunE: func(c *cobra.Command, args []string) error {
			app, err := initializeSystem(configPath, dataDir)
			if err != nil {
				return err
			}
			defer app.Shutdown(context.Background())

			for _, d := range app.Store.AvailableDates(context.Background()) {
				fmt.Println(d.Format("2006-01-02"))
			}
			return nil
		},
	}

	stocksCmd := &cobra.Command{
		Use:   "stocks [date]",
		Short: "List the stocks traded on a date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			app, err := initializeSystem(configPath, dataDir)
			if err != nil {
				return err
			}
			defer app.Shutdown(context.Background())

			date := dateparse.Resolve(strings.Join(args, " "))
			stocks := aggregate.New(app.Store).AvailableStocks(context.Background(), date)
			if len(stocks) == 0 {
				fmt.Printf("No trading data for %s.\n", date.Format("2006-01-02"))
				return nil
			}
			for _, st := range stocks {
				fmt.Printf("%-12s %s\n", st.Code, st.Market)
			}
			return nil
		},
	}

	rootCmd.AddCommand(askCmd, chatCmd, datesCmd, stocksCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
