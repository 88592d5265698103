// Package cmd - valuescan CLI commands
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/infra/database/postgres"
	"github.com/wonny/valuescan/internal/pkg/config"
	"github.com/wonny/valuescan/internal/pkg/logger"
	"github.com/wonny/valuescan/internal/service/analysis"
	engine "github.com/wonny/valuescan/internal/strategy/scorecard"
)

var (
	// 공통 플래그
	dateFlag string
	verbose  bool
)

// rootCmd 루트 커맨드
var rootCmd = &cobra.Command{
	Use:   "valuescan",
	Short: "ValueScan - 워런 버핏 110점 스코어카드 분석 CLI",
	Long: `ValueScan - 워런 버핏 110점 스코어카드 분석 CLI

Commands:
    analyze <symbol>   한 종목 분석 후 결과 출력
    batch              전체 종목 일괄 분석
    top                상위 종목 조회
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
}

// Execute 루트 커맨드 실행
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "analysis date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(topCmd)
}

var cfg *config.Config

// initRuntime loads configuration and initializes logging
func initRuntime() error {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	time.Local = loc

	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if !verbose {
		level = "warn" // CLI 출력을 방해하지 않도록 억제
	}
	return logger.Init(logger.Config{
		Level:          level,
		Format:         "console",
		ServiceName:    "valuescan-cli",
		ServiceVersion: "1.0.0",
	})
}

// newAnalysisService wires the scoring pipeline against PostgreSQL
func newAnalysisService(ctx context.Context) (*analysis.Service, *postgres.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	var criteria *scorecard.Criteria
	if cfg.Analysis.CriteriaFile != "" {
		criteria, err = scorecard.LoadCriteriaFile(cfg.Analysis.CriteriaFile)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("file", cfg.Analysis.CriteriaFile).Msg("Loaded criteria override")
	}

	eng, err := engine.NewEngine(criteria)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	svc := analysis.NewService(eng,
		postgres.NewMetricsRepository(pool),
		postgres.NewAnalysisRepository(pool),
	)
	return svc, pool, nil
}

// analysisDate resolves the --date flag, defaulting to today
func analysisDate() (time.Time, error) {
	if dateFlag == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return time.Parse("2006-01-02", dateFlag)
}
