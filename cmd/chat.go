package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wastewise/internal/metrics"
	"wastewise/internal/provider"
	"wastewise/internal/render"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat MESSAGE",
	Short: "Ask the kitchen assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
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

	reply := a.Chat(strings.Join(args, " "), data.WeeklyData(ctx))

	fmt.Println()
	fmt.Print(render.RenderChat(reply))
	fmt.Println()
	return nil
}
