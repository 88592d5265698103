package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/valuescan/internal/service/export"
)

var (
	topLimit  int
	topFormat string
	topOutput string
)

// topCmd 상위 종목 조회
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "기준일 상위 점수 종목을 조회합니다",
	Long: `기준일의 저장된 분석 결과를 점수순으로 조회합니다.

Examples:
  go run ./cmd/valuescan top --limit 20
  go run ./cmd/valuescan top --format csv --output top.csv`,
	RunE: runTop,
}

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", 20, "maximum results")
	topCmd.Flags().StringVar(&topFormat, "format", "table", "output format (table, csv, json)")
	topCmd.Flags().StringVar(&topOutput, "output", "", "write to file instead of stdout")
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, pool, err := newAnalysisService(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	date, err := analysisDate()
	if err != nil {
		return err
	}

	results, err := svc.GetTopByScore(ctx, date, topLimit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("분석 결과 없음 (기준일 %s)\n", date.Format("2006-01-02"))
		return nil
	}

	out := os.Stdout
	if topOutput != "" {
		f, err := os.Create(topOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch topFormat {
	case "csv":
		return export.WriteCSV(out, results)
	case "json":
		return export.WriteJSON(out, results)
	case "table":
		fmt.Fprintf(out, "%-4s %-8s %-16s %8s %6s %-12s %-6s\n",
			"순위", "종목코드", "종목명", "총점", "등급", "투자등급", "리스크")
		for i, a := range results {
			fmt.Fprintf(out, "%-4d %-8s %-16s %8.1f %6s %-12s %-6s\n",
				i+1, a.Symbol, a.Name, a.TotalScore, a.OverallGrade, a.InvestmentGrade, a.RiskLevel)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (table, csv, json)", topFormat)
	}
}
