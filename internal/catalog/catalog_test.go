package catalog

import "testing"

func TestCategories(t *testing.T) {
	cats := Categories()

	if len(cats) != 9 {
		t.Fatalf("Categories() returned %d categories, want 9", len(cats))
	}

	// BTC leads the declared order.
	if cats[0].Key != "BTC" || cats[0].CoinID != "bitcoin" {
		t.Errorf("first category = %s/%s, want BTC/bitcoin", cats[0].Key, cats[0].CoinID)
	}

	seen := make(map[string]bool)
	for _, c := range cats {
		if c.Key == "" || c.CoinID == "" || c.CoinSymbol == "" || c.Color == "" {
			t.Errorf("category %q has empty fields: %+v", c.Key, c)
		}
		if seen[c.Key] {
			t.Errorf("duplicate category key %q", c.Key)
		}
		seen[c.Key] = true

		if len(c.Companies) == 0 {
			t.Errorf("category %q has no companies", c.Key)
		}
		tickers := make(map[string]bool)
		for _, co := range c.Companies {
			if co.Ticker == "" || co.Name == "" {
				t.Errorf("category %q has incomplete company: %+v", c.Key, co)
			}
			if tickers[co.Ticker] {
				t.Errorf("category %q has duplicate ticker %q", c.Key, co.Ticker)
			}
			tickers[co.Ticker] = true
		}
	}
}

func TestStockColor(t *testing.T) {
	if got := StockColor(0); got != "#ef4444" {
		t.Errorf("StockColor(0) = %s, want #ef4444", got)
	}
	if got := StockColor(9); got != "#ec4899" {
		t.Errorf("StockColor(9) = %s, want #ec4899", got)
	}

	// Palette wraps after ten entries.
	if StockColor(10) != StockColor(0) {
		t.Errorf("StockColor(10) = %s, want %s", StockColor(10), StockColor(0))
	}
	if StockColor(23) != StockColor(3) {
		t.Errorf("StockColor(23) = %s, want %s", StockColor(23), StockColor(3))
	}

	// Never panics on odd input.
	if StockColor(-1) == "" {
		t.Error("StockColor(-1) returned empty color")
	}
}
