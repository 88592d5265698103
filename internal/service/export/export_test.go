package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/wonny/valuescan/internal/domain/scorecard"
)

func sampleAnalyses() []*scorecard.Analysis {
	return []*scorecard.Analysis{
		{
			Symbol:          "005930",
			Name:            "삼성전자",
			AnalysisDate:    time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			TotalScore:      83,
			MaxTotalScore:   scorecard.MaxTotalScore,
			OverallGrade:    "B+",
			InvestmentGrade: scorecard.Buy,
			RiskLevel:       scorecard.RiskLow,
			QualityRating:   scorecard.QualityGood,
			Stability:       scorecard.CategoryScore{Category: "안정성", MaxScore: 25, ActualScore: 25},
			TargetPriceLow:  48107.3,
			TargetPriceHigh: 58797.8,
			DataSufficient:  true,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleAnalyses()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(records))
	}
	if records[0][0] != "symbol" {
		t.Errorf("unexpected header: %v", records[0])
	}

	row := records[1]
	if row[0] != "005930" || row[1] != "삼성전자" || row[2] != "2025-07-15" {
		t.Errorf("unexpected identity columns: %v", row[:3])
	}
	if row[3] != "83.0" {
		t.Errorf("total_score = %q, want 83.0", row[3])
	}
	if row[12] != "Buy" || row[13] != "Low" {
		t.Errorf("unexpected classification columns: %v", row[12:14])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleAnalyses()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []*scorecard.Analysis
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("re-reading json failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Symbol != "005930" {
		t.Errorf("unexpected decoded payload: %+v", decoded)
	}
	if !strings.Contains(buf.String(), "\"investment_grade\": \"Buy\"") {
		t.Error("expected pretty-printed investment_grade field")
	}
}
