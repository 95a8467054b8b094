package portfolio

import "testing"

func TestMissedProfit(t *testing.T) {
	a := setupAnalyzer(t,
		tx("IAM", "2024-01-15", 10, 100, Buy),
		tx("IAM", "2024-02-01", 4, 105, Sell),
		tx("IAM", "2024-03-01", 2, 115, Sell),
	)

	records, diags := a.MissedProfit()
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.Symbol != "IAM" || !r.QuantitySold.Equal(Q(6)) {
		t.Errorf("record = %+v", r)
	}
	// Unweighted mean of the two sale prices: (105 + 115) / 2 = 110.
	if !r.AvgSellPrice.Equal(M(110, "MAD")) {
		t.Errorf("AvgSellPrice = %s, want MAD 110", r.AvgSellPrice)
	}
	// Latest IAM price is 120: (120 - 110) x 6 = 60.
	if !r.MissedProfit.Equal(M(60, "MAD")) {
		t.Errorf("MissedProfit = %s, want MAD 60", r.MissedProfit)
	}
}

func TestMissedProfitOnlyPositive(t *testing.T) {
	// BCP dropped from 200 to 180: selling at 200 was a good move.
	a := setupAnalyzer(t,
		tx("BCP", "2024-01-15", 5, 200, Buy),
		tx("BCP", "2024-02-01", 5, 200, Sell),
	)
	records, _ := a.MissedProfit()
	if len(records) != 0 {
		t.Errorf("profitable sales must not be reported: %+v", records)
	}
}

func TestMissedProfitSkipsUnpriced(t *testing.T) {
	a := setupAnalyzer(t,
		tx("SNEP", "2024-01-15", 5, 50, Buy),
		tx("SNEP", "2024-02-01", 5, 40, Sell),
	)
	records, diags := a.MissedProfit()
	if len(records) != 0 {
		t.Errorf("unpriced symbols must be skipped: %+v", records)
	}
	if !diags.Has(MissingPrice) {
		t.Errorf("expected a missing-price diagnostic, got %v", diags)
	}
}

func TestMissedProfitSortedDescending(t *testing.T) {
	a := setupAnalyzer(t,
		tx("IAM", "2024-01-15", 10, 100, Buy),
		tx("IAM", "2024-02-01", 10, 100, Sell), // missed (120-100)x10 = 200
		tx("BCP", "2024-01-15", 5, 150, Buy),
		tx("BCP", "2024-02-01", 5, 150, Sell), // missed (180-150)x5 = 150
	)
	records, _ := a.MissedProfit()
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Symbol != "IAM" || records[1].Symbol != "BCP" {
		t.Errorf("records not sorted by missed amount: %+v", records)
	}
}

func TestMissedProfitNoSales(t *testing.T) {
	a := setupAnalyzer(t,
		tx("IAM", "2024-01-15", 10, 100, Buy),
	)
	records, _ := a.MissedProfit()
	if len(records) != 0 {
		t.Errorf("buy-only ledger should have no missed profit: %+v", records)
	}
}
