// Package export renders persisted analysis results as CSV or JSON for
// downstream screening spreadsheets and tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// WriteJSON writes analyses as a pretty-printed JSON array.
func WriteJSON(w io.Writer, analyses []*scorecard.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analyses); err != nil {
		return fmt.Errorf("encode analyses: %w", err)
	}
	return nil
}

// csvHeader is one row per company, category scores flattened.
var csvHeader = []string{
	"symbol", "name", "analysis_date",
	"total_score", "score_pct", "overall_grade",
	"profitability", "growth", "stability", "efficiency", "valuation", "quality",
	"investment_grade", "risk_level", "quality_rating",
	"target_price_low", "target_price_high",
	"data_sufficient",
}

// WriteCSV writes analyses as CSV with a header row.
func WriteCSV(w io.Writer, analyses []*scorecard.Analysis) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, a := range analyses {
		record := []string{
			a.Symbol,
			a.Name,
			a.AnalysisDate.Format("2006-01-02"),
			formatScore(a.TotalScore),
			formatScore(a.ScorePercentage()),
			a.OverallGrade,
			formatScore(a.Profitability.ActualScore),
			formatScore(a.Growth.ActualScore),
			formatScore(a.Stability.ActualScore),
			formatScore(a.Efficiency.ActualScore),
			formatScore(a.Valuation.ActualScore),
			formatScore(a.Quality.ActualScore),
			string(a.InvestmentGrade),
			string(a.RiskLevel),
			string(a.QualityRating),
			formatScore(a.TargetPriceLow),
			formatScore(a.TargetPriceHigh),
			strconv.FormatBool(a.DataSufficient),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record for %s: %w", a.Symbol, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
