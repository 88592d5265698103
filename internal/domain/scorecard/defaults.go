package scorecard

// DefaultCriteria returns the baseline 110-point policy. Ratio thresholds
// are expressed as fractions (ROE 0.15 = 15%); PER/PBR/PSR are multiples.
func DefaultCriteria() *Criteria {
	return &Criteria{
		Profitability: CategoryCriteria{
			Name:      "수익성",
			MaxPoints: 30,
			Indicators: []IndicatorCriteria{
				{
					Key: IndROE, Name: "ROE (자기자본이익률)", MaxPoints: 8, NeutralPoints: 3,
					Bands: []Band{
						{Threshold: 0.20, Points: 8, Label: "탁월한 수준 (20% 이상)"},
						{Threshold: 0.15, Points: 6, Label: "우수한 수준 (15% 이상)"},
						{Threshold: 0.10, Points: 4, Label: "수용 가능 (10% 이상)"},
						{Threshold: 0.05, Points: 2, Label: "평균 이하"},
					},
					FloorPoints: 0, FloorLabel: "미흡",
				},
				{
					Key: IndROA, Name: "ROA (총자산이익률)", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 0.10, Points: 6, Label: "탁월한 수준 (10% 이상)"},
						{Threshold: 0.07, Points: 4.5, Label: "우수한 수준 (7% 이상)"},
						{Threshold: 0.05, Points: 3, Label: "양호한 수준 (5% 이상)"},
						{Threshold: 0.02, Points: 1.5, Label: "평균 이하"},
					},
					FloorPoints: 0, FloorLabel: "미흡",
				},
				{
					Key: IndOperatingMargin, Name: "영업이익률", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 0.20, Points: 6, Label: "탁월한 마진 (20% 이상)"},
						{Threshold: 0.15, Points: 5, Label: "우수한 마진 (15% 이상)"},
						{Threshold: 0.10, Points: 3.5, Label: "양호한 마진 (10% 이상)"},
						{Threshold: 0.05, Points: 2, Label: "평균 이하"},
					},
					FloorPoints: 1, FloorLabel: "낮은 마진",
				},
				{
					Key: IndNetMargin, Name: "순이익률", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 0.15, Points: 6, Label: "탁월한 순마진 (15% 이상)"},
						{Threshold: 0.10, Points: 4.5, Label: "우수한 순마진 (10% 이상)"},
						{Threshold: 0.05, Points: 3, Label: "양호한 순마진 (5% 이상)"},
						{Threshold: 0.02, Points: 1.5, Label: "평균 이하"},
					},
					FloorPoints: 0, FloorLabel: "미흡",
				},
				{
					Key: IndNetMarginTrend, Name: "순마진 추세", MaxPoints: 4, NeutralPoints: 2,
					Bands: []Band{
						{Threshold: 0.02, Points: 4, Label: "마진 확대 추세"},
						{Threshold: 0.00, Points: 3, Label: "마진 유지"},
						{Threshold: -0.02, Points: 1.5, Label: "소폭 축소"},
					},
					FloorPoints: 0.5, FloorLabel: "마진 축소 추세",
				},
			},
		},
		Growth: CategoryCriteria{
			Name:      "성장성",
			MaxPoints: 25,
			Indicators: []IndicatorCriteria{
				{
					Key: IndRevenueCAGR, Name: "매출 성장률 (CAGR)", MaxPoints: 9, NeutralPoints: 4,
					Bands: []Band{
						{Threshold: 0.15, Points: 9, Label: "탁월한 성장 (15% 이상)"},
						{Threshold: 0.10, Points: 6.5, Label: "우수한 성장 (10% 이상)"},
						{Threshold: 0.05, Points: 4, Label: "양호한 성장 (5% 이상)"},
						{Threshold: 0.00, Points: 2, Label: "저성장"},
					},
					FloorPoints: 1, FloorLabel: "역성장",
				},
				{
					Key: IndNetIncomeCAGR, Name: "순이익 성장률 (CAGR)", MaxPoints: 8, NeutralPoints: 3.5,
					Bands: []Band{
						{Threshold: 0.15, Points: 8, Label: "탁월한 성장 (15% 이상)"},
						{Threshold: 0.10, Points: 6, Label: "우수한 성장 (10% 이상)"},
						{Threshold: 0.05, Points: 3.5, Label: "양호한 성장 (5% 이상)"},
						{Threshold: 0.00, Points: 1.5, Label: "저성장"},
					},
					FloorPoints: 0.5, FloorLabel: "역성장",
				},
				{
					Key: IndRevenueYoY, Name: "매출 증가율 (전년비)", MaxPoints: 4, NeutralPoints: 2,
					Bands: []Band{
						{Threshold: 0.10, Points: 4, Label: "고성장 (10% 이상)"},
						{Threshold: 0.05, Points: 3, Label: "양호 (5% 이상)"},
						{Threshold: 0.00, Points: 2, Label: "보합"},
					},
					FloorPoints: 0.5, FloorLabel: "감소",
				},
				{
					Key: IndNetIncomeYoY, Name: "순이익 증가율 (전년비)", MaxPoints: 4, NeutralPoints: 2,
					Bands: []Band{
						{Threshold: 0.10, Points: 4, Label: "고성장 (10% 이상)"},
						{Threshold: 0.05, Points: 3, Label: "양호 (5% 이상)"},
						{Threshold: 0.00, Points: 2, Label: "보합"},
					},
					FloorPoints: 0.5, FloorLabel: "감소",
				},
			},
		},
		Stability: CategoryCriteria{
			Name:      "안정성",
			MaxPoints: 25,
			Indicators: []IndicatorCriteria{
				{
					Key: IndDebtRatio, Name: "부채비율", MaxPoints: 8, NeutralPoints: 3, LowerIsBetter: true,
					Bands: []Band{
						{Threshold: 0.20, Points: 8, Label: "탁월한 안정성 (20% 이하)"},
						{Threshold: 0.30, Points: 6, Label: "우수한 안정성 (30% 이하)"},
						{Threshold: 0.50, Points: 4, Label: "수용 가능 (50% 이하)"},
					},
					FloorPoints: 2, FloorLabel: "주의 필요",
				},
				{
					Key: IndCurrentRatio, Name: "유동비율", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 2.0, Points: 6, Label: "우수한 유동성 (2.0 이상)"},
						{Threshold: 1.5, Points: 4, Label: "양호한 유동성 (1.5 이상)"},
						{Threshold: 1.0, Points: 2, Label: "보통"},
					},
					FloorPoints: 1, FloorLabel: "유동성 부족",
				},
				{
					Key: IndEquityRatio, Name: "자기자본비율", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 0.70, Points: 6, Label: "매우 건전 (70% 이상)"},
						{Threshold: 0.50, Points: 4.5, Label: "건전 (50% 이상)"},
						{Threshold: 0.30, Points: 3, Label: "보통"},
					},
					FloorPoints: 1, FloorLabel: "자본 취약",
				},
				{
					Key: IndCashCoverage, Name: "현금/차입금 배율", MaxPoints: 5, NeutralPoints: 2,
					Bands: []Band{
						{Threshold: 1.0, Points: 5, Label: "사실상 무차입"},
						{Threshold: 0.5, Points: 3.5, Label: "충분한 현금 (0.5배 이상)"},
						{Threshold: 0.2, Points: 2, Label: "보통"},
					},
					FloorPoints: 1, FloorLabel: "현금 부족",
				},
			},
		},
		Efficiency: CategoryCriteria{
			Name:      "효율성",
			MaxPoints: 10,
			Indicators: []IndicatorCriteria{
				{
					Key: IndAssetTurnover, Name: "총자산회전율", MaxPoints: 10, NeutralPoints: 4.5,
					Bands: []Band{
						{Threshold: 1.0, Points: 10, Label: "탁월한 자산 활용 (1.0 이상)"},
						{Threshold: 0.7, Points: 8, Label: "우수한 자산 활용 (0.7 이상)"},
						{Threshold: 0.5, Points: 6, Label: "양호 (0.5 이상)"},
						{Threshold: 0.3, Points: 3.5, Label: "평균 이하"},
					},
					FloorPoints: 1.5, FloorLabel: "자산 활용 저조",
				},
			},
		},
		Valuation: CategoryCriteria{
			Name:      "가치평가",
			MaxPoints: 20,
			Indicators: []IndicatorCriteria{
				{
					Key: IndPER, Name: "PER", MaxPoints: 8, NeutralPoints: 3.5, LowerIsBetter: true,
					Bands: []Band{
						{Threshold: 12, Points: 8, Label: "매우 저평가 (12배 이하)"},
						{Threshold: 15, Points: 6, Label: "저평가 (15배 이하)"},
						{Threshold: 20, Points: 3.5, Label: "적정 가치"},
						{Threshold: 30, Points: 1.5, Label: "다소 고평가"},
					},
					FloorPoints: 0, FloorLabel: "고평가",
				},
				{
					Key: IndPBR, Name: "PBR", MaxPoints: 7, NeutralPoints: 3, LowerIsBetter: true,
					Bands: []Band{
						{Threshold: 0.8, Points: 7, Label: "매우 저평가 (0.8배 이하)"},
						{Threshold: 1.0, Points: 5.5, Label: "저평가 (1.0배 이하)"},
						{Threshold: 1.5, Points: 3.5, Label: "적정 가치"},
						{Threshold: 3.0, Points: 1.5, Label: "다소 고평가"},
					},
					FloorPoints: 0, FloorLabel: "고평가",
				},
				{
					Key: IndPSR, Name: "PSR", MaxPoints: 5, NeutralPoints: 2, LowerIsBetter: true,
					Bands: []Band{
						{Threshold: 0.8, Points: 5, Label: "매우 저평가 (0.8배 이하)"},
						{Threshold: 1.5, Points: 3.5, Label: "적정 수준"},
						{Threshold: 3.0, Points: 2, Label: "다소 고평가"},
					},
					FloorPoints: 0.5, FloorLabel: "고평가",
				},
			},
		},
		Quality: CategoryCriteria{
			Name:      "품질 프리미엄",
			MaxPoints: 10,
			Indicators: []IndicatorCriteria{
				{
					Key: IndEarningsConsistency, Name: "수익 일관성", MaxPoints: 6, NeutralPoints: 2.5,
					Bands: []Band{
						{Threshold: 1.0, Points: 6, Label: "완벽한 수익 일관성"},
						{Threshold: 0.8, Points: 4, Label: "우수한 수익 일관성"},
						{Threshold: 0.6, Points: 2.5, Label: "보통 수익 일관성"},
					},
					FloorPoints: 1, FloorLabel: "수익 변동성 높음",
				},
				{
					Key: IndEarningsTrend, Name: "이익 추세", MaxPoints: 4, NeutralPoints: 2,
					Bands: []Band{
						{Threshold: 0.20, Points: 4, Label: "뚜렷한 이익 증가"},
						{Threshold: 0.00, Points: 3, Label: "이익 유지"},
						{Threshold: -0.20, Points: 1.5, Label: "소폭 감소"},
					},
					FloorPoints: 0.5, FloorLabel: "이익 감소 추세",
				},
			},
		},
		GradeLadder: []GradeBand{
			{MinPct: 95, Grade: "A++"},
			{MinPct: 90, Grade: "A+"},
			{MinPct: 85, Grade: "A"},
			{MinPct: 80, Grade: "A-"},
			{MinPct: 75, Grade: "B+"},
			{MinPct: 70, Grade: "B"},
			{MinPct: 65, Grade: "B-"},
			{MinPct: 60, Grade: "C+"},
			{MinPct: 50, Grade: "C"},
			{MinPct: 40, Grade: "D"},
			{MinPct: 0, Grade: "F"},
		},
		Classifier: ClassifierCriteria{
			StrongBuyTotalPct: 85,
			GateCategoryPct:   70,
			BuyTotalPct:       75,
			HoldTotalPct:      65,
			WeakHoldTotalPct:  55,
			RiskLowPct:        80,
			RiskMediumPct:     60,
			QualityHighPct:    85,
			QualityGoodPct:    70,
			StrengthPct:       80,
			WeaknessPct:       50,
		},
		TargetPrice: TargetPriceCriteria{
			Tiers: []MultiplierTier{
				{MinTotalPct: 80, Multiplier: 1.2},
				{MinTotalPct: 65, Multiplier: 1.1},
				{MinTotalPct: 0, Multiplier: 1.0},
			},
			LowFactor:  0.9,
			HighFactor: 1.1,
		},
		MinHistoryPeriods: 3,
	}
}
