package scorecard

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCriteriaIsValid(t *testing.T) {
	c := DefaultCriteria()
	if err := c.Validate(); err != nil {
		t.Fatalf("default criteria must validate: %v", err)
	}
}

func TestDefaultCriteriaTotals(t *testing.T) {
	c := DefaultCriteria()

	total := 0.0
	for _, cat := range c.Categories() {
		total += cat.MaxPoints
	}
	if total != MaxTotalScore {
		t.Errorf("category maxima sum to %v, want %v", total, MaxTotalScore)
	}

	wantMax := map[string]float64{
		"수익성":     30,
		"성장성":     25,
		"안정성":     25,
		"효율성":     10,
		"가치평가":    20,
		"품질 프리미엄": 10,
	}
	for _, cat := range c.Categories() {
		if cat.MaxPoints != wantMax[cat.Name] {
			t.Errorf("%s max = %v, want %v", cat.Name, cat.MaxPoints, wantMax[cat.Name])
		}
	}

	if c.TotalIndicators() != 19 {
		t.Errorf("TotalIndicators = %d, want 19", c.TotalIndicators())
	}
}

func TestValidateRejectsBrokenCriteria(t *testing.T) {
	t.Run("points sum mismatch", func(t *testing.T) {
		c := DefaultCriteria()
		c.Profitability.Indicators[0].MaxPoints += 1
		if err := c.Validate(); !errors.Is(err, ErrInvalidCriteria) {
			t.Errorf("expected ErrInvalidCriteria, got %v", err)
		}
	})

	t.Run("neutral above max", func(t *testing.T) {
		c := DefaultCriteria()
		c.Growth.Indicators[0].NeutralPoints = c.Growth.Indicators[0].MaxPoints + 1
		if err := c.Validate(); !errors.Is(err, ErrNeutralOutOfRange) {
			t.Errorf("expected ErrNeutralOutOfRange, got %v", err)
		}
	})

	t.Run("neutral zero", func(t *testing.T) {
		c := DefaultCriteria()
		c.Stability.Indicators[0].NeutralPoints = 0
		if err := c.Validate(); !errors.Is(err, ErrNeutralOutOfRange) {
			t.Errorf("expected ErrNeutralOutOfRange, got %v", err)
		}
	})

	t.Run("non-monotonic bands", func(t *testing.T) {
		c := DefaultCriteria()
		c.Valuation.Indicators[0].Bands[1].Points = c.Valuation.Indicators[0].Bands[0].Points
		if err := c.Validate(); !errors.Is(err, ErrBandsNotMonotonic) {
			t.Errorf("expected ErrBandsNotMonotonic, got %v", err)
		}
	})

	t.Run("ascending grade ladder", func(t *testing.T) {
		c := DefaultCriteria()
		c.GradeLadder[1].MinPct = c.GradeLadder[0].MinPct + 1
		if err := c.Validate(); !errors.Is(err, ErrInvalidCriteria) {
			t.Errorf("expected ErrInvalidCriteria, got %v", err)
		}
	})

	t.Run("history window too short", func(t *testing.T) {
		c := DefaultCriteria()
		c.MinHistoryPeriods = 1
		if err := c.Validate(); !errors.Is(err, ErrInvalidCriteria) {
			t.Errorf("expected ErrInvalidCriteria, got %v", err)
		}
	})
}

func TestEvaluateBandDirections(t *testing.T) {
	c := DefaultCriteria()

	roe, ok := c.Profitability.Indicator(IndROE)
	if !ok {
		t.Fatal("ROE criteria missing")
	}
	if pts, _ := roe.Evaluate(0.25); pts != roe.MaxPoints {
		t.Errorf("ROE 25%% = %v, want max %v", pts, roe.MaxPoints)
	}
	if pts, _ := roe.Evaluate(-0.10); pts != roe.FloorPoints {
		t.Errorf("negative ROE = %v, want floor %v", pts, roe.FloorPoints)
	}

	per, ok := c.Valuation.Indicator(IndPER)
	if !ok {
		t.Fatal("PER criteria missing")
	}
	if pts, _ := per.Evaluate(10); pts != per.MaxPoints {
		t.Errorf("PER 10x = %v, want max %v", pts, per.MaxPoints)
	}
	if pts, _ := per.Evaluate(50); pts != per.FloorPoints {
		t.Errorf("PER 50x = %v, want floor %v", pts, per.FloorPoints)
	}

	// Threshold boundaries are inclusive in the favorable direction.
	if pts, _ := roe.Evaluate(0.15); pts != 6 {
		t.Errorf("ROE exactly 15%% = %v, want 6", pts)
	}
	if pts, _ := per.Evaluate(15); pts != 6 {
		t.Errorf("PER exactly 15x = %v, want 6", pts)
	}
}

func TestLoadCriteriaFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "criteria.json")
		writeCriteriaFile(t, path, DefaultCriteria())

		loaded, err := LoadCriteriaFile(path)
		if err != nil {
			t.Fatalf("LoadCriteriaFile failed: %v", err)
		}
		if loaded.TotalIndicators() != DefaultCriteria().TotalIndicators() {
			t.Error("loaded criteria lost indicators")
		}
	})

	t.Run("invalid file rejected", func(t *testing.T) {
		broken := DefaultCriteria()
		broken.MinHistoryPeriods = 0
		path := filepath.Join(t.TempDir(), "criteria.json")
		writeCriteriaFile(t, path, broken)

		if _, err := LoadCriteriaFile(path); err == nil {
			t.Error("expected validation error for broken criteria file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadCriteriaFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func writeCriteriaFile(t *testing.T, path string, c *Criteria) {
	t.Helper()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal criteria: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write criteria: %v", err)
	}
}
