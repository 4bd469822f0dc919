package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wastewise/internal/metrics"
	"wastewise/internal/models"
	"wastewise/internal/provider"
	"wastewise/internal/render"

	"github.com/spf13/cobra"
)

var flagRemote string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print the waste prediction and suggestions",
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&flagRemote, "remote", "", "Read data from a running wastewise API instead of the database")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if flagRemote != "" {
		cfg.Remote.URL = flagRemote
	}

	source, release, err := openProvider(cfg, log)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mc := metrics.NewCollector()
	data := provider.NewFallback(source, log, mc)
	a := newAnalyzer(cfg, log, mc)

	history := data.WeeklyData(ctx)
	prediction, err := a.PredictOrDefault(history)
	if err != nil {
		return err
	}
	suggestions, err := a.SuggestOrDefault(history)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(render.RenderTitle("wastewise insights"))
	fmt.Println()
	fmt.Print(render.RenderTable(weekTable(history)))
	fmt.Println()
	fmt.Print(render.RenderPrediction(prediction))
	fmt.Println()
	fmt.Print(render.RenderSuggestions(suggestions))
	fmt.Println()
	return nil
}

func weekTable(history []models.DailyRecord) render.Table {
	t := render.Table{
		Title:   "This Week",
		Headers: []string{"Day", "Cooked", "Eaten", "Leftover", "Waste"},
	}
	grams := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64) + "g"
	}
	for _, r := range history {
		t.Rows = append(t.Rows, []string{r.Date, grams(r.Cooked), grams(r.Eaten), grams(r.Leftover), grams(r.WasteOrZero())})
	}
	return t
}
