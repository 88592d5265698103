package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var batchWorkers int

// batchCmd 전체 종목 일괄 분석
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "재무 데이터가 있는 전 종목을 일괄 분석합니다",
	Long: `재무 데이터가 있는 전 종목을 워커 풀로 일괄 채점하고 저장합니다.

Examples:
  go run ./cmd/valuescan batch
  go run ./cmd/valuescan batch --workers 8 --date 2025-07-15`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent workers (default from BATCH_WORKERS)")
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Analysis.BatchWorkers
	}

	fmt.Printf("🚀 일괄 분석 시작 (기준일 %s, 워커 %d)\n", date.Format("2006-01-02"), workers)

	result, err := svc.RunBatch(ctx, date, workers)
	if err != nil {
		return err
	}

	fmt.Printf("✅ 완료: %d/%d 종목 분석 (%s)\n", result.Analyzed, result.Total, result.Duration.Round(10*time.Millisecond))
	if len(result.Failed) > 0 {
		fmt.Printf("⚠️  실패 %d건: %s\n", len(result.Failed), strings.Join(result.Failed, ", "))
	}
	return nil
}
