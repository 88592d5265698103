package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// analyzeCmd 한 종목 분석
var analyzeCmd = &cobra.Command{
	Use:   "analyze <symbol>",
	Short: "한 종목을 분석하고 스코어카드를 출력합니다",
	Long: `한 종목의 재무 데이터를 110점 스코어카드로 채점하고 결과를 저장합니다.

Examples:
  go run ./cmd/valuescan analyze 005930
  go run ./cmd/valuescan analyze 005930 --date 2025-07-15`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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

	a, err := svc.AnalyzeSymbol(ctx, args[0], date)
	if err != nil {
		return err
	}

	printAnalysis(a)
	return nil
}

func printAnalysis(a *scorecard.Analysis) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("%s (%s)  %s\n", a.Name, a.Symbol, a.AnalysisDate.Format("2006-01-02"))
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("총점: %.1f / %.0f점 (%.1f%%)  등급: %s\n",
		a.TotalScore, a.MaxTotalScore, a.ScorePercentage(), a.OverallGrade)
	fmt.Printf("투자등급: %s  리스크: %s  품질: %s\n",
		a.InvestmentGrade, a.RiskLevel, a.QualityRating)
	fmt.Println(strings.Repeat("-", 60))

	for _, cat := range a.Categories() {
		fmt.Printf("%-8s %5.1f / %4.0f점 (%5.1f%%, %s)\n",
			cat.Category, cat.ActualScore, cat.MaxScore, cat.Percentage(), cat.Grade())
		if verbose {
			for _, d := range cat.Details {
				fmt.Printf("    %-24s %4.1f / %4.1f  %s\n", d.Name, d.Score, d.MaxScore, d.Description)
			}
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	if len(a.KeyStrengths) > 0 {
		fmt.Printf("강점: %s\n", strings.Join(a.KeyStrengths, ", "))
	}
	if len(a.KeyWeaknesses) > 0 {
		fmt.Printf("약점: %s\n", strings.Join(a.KeyWeaknesses, ", "))
	}
	if a.TargetPriceLow > 0 {
		fmt.Printf("목표 주가: %.0f ~ %.0f원\n", a.TargetPriceLow, a.TargetPriceHigh)
	}
	fmt.Println(a.InvestmentThesis)
	if !a.DataSufficient {
		fmt.Printf("⚠️  데이터 부족: %d/%d 지표만 산출됨 (중립 점수 다수 적용)\n",
			a.ComputedIndicators, a.TotalIndicators)
	}
}
