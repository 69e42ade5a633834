// Package catalog holds the static table of tracked crypto assets and the
// public companies treasury-holding them. The catalog is fixed configuration,
// loaded once and never mutated at runtime.
package catalog

// Company identifies one tracked equity.
type Company struct {
	Ticker string
	Name   string
}

// Category groups one crypto asset with its treasury companies.
type Category struct {
	Key        string
	CoinID     string
	CoinSymbol string
	Color      string
	Companies  []Company
}

var categories = []Category{
	{
		Key:        "BTC",
		CoinID:     "bitcoin",
		CoinSymbol: "BTC",
		Color:      "#f7931a",
		Companies: []Company{
			{Ticker: "MSTR", Name: "Strategy"},
			{Ticker: "XXI", Name: "Twenty One"},
			{Ticker: "CEPO", Name: "Bitcoin Standard"},
			{Ticker: "ASST", Name: "Strive"},
			{Ticker: "NAKA", Name: "KindlyMD (Nakamoto)"},
			{Ticker: "BRR", Name: "PropCap BTC"},
			{Ticker: "SQNS", Name: "Sequans Comm"},
		},
	},
	{
		Key:        "ETH",
		CoinID:     "ethereum",
		CoinSymbol: "ETH",
		Color:      "#627eea",
		Companies: []Company{
			{Ticker: "BMNR", Name: "BitMine"},
			{Ticker: "SBET", Name: "Sharplink Gaming"},
			{Ticker: "ETHM", Name: "Ether Machine"},
			{Ticker: "BTBT", Name: "Bit Digital"},
			{Ticker: "BTCS", Name: "BTCS Inc."},
			{Ticker: "ETHZ", Name: "ETHZilla"},
			{Ticker: "FGNX", Name: "FG Nexus"},
			{Ticker: "GAME", Name: "GameSquare Holdings"},
		},
	},
	{
		Key:        "SOL",
		CoinID:     "solana",
		CoinSymbol: "SOL",
		Color:      "#00ffa3",
		Companies: []Company{
			{Ticker: "FWDI", Name: "Forward Industries"},
			{Ticker: "HSDT", Name: "Solana Company"},
			{Ticker: "DFDV", Name: "DeFi Development"},
			{Ticker: "UPXI", Name: "Upexi"},
			{Ticker: "STSS", Name: "Sharps Technology"},
			{Ticker: "STKE", Name: "Sol Strategies"},
			{Ticker: "SLMT", Name: "Solmate"},
			{Ticker: "SLAI", Name: "SOLAI Limited"},
		},
	},
	{
		Key:        "HYPE",
		CoinID:     "hyperliquid",
		CoinSymbol: "HYPE",
		Color:      "#00d4aa",
		Companies: []Company{
			{Ticker: "PURR", Name: "Sonnet BioTher"},
			{Ticker: "HYPD", Name: "Hyperion DeFi"},
		},
	},
	{
		Key:        "SUI",
		CoinID:     "sui",
		CoinSymbol: "SUI",
		Color:      "#4da2ff",
		Companies: []Company{
			{Ticker: "SUIG", Name: "SUI Group Holdings"},
		},
	},
	{
		Key:        "INJ",
		CoinID:     "injective-protocol",
		CoinSymbol: "INJ",
		Color:      "#00f2fe",
		Companies: []Company{
			{Ticker: "PAPL", Name: "Pineapple Financial"},
		},
	},
	{
		Key:        "BNB",
		CoinID:     "binancecoin",
		CoinSymbol: "BNB",
		Color:      "#f3ba2f",
		Companies: []Company{
			{Ticker: "BNC", Name: "CEA Industries"},
		},
	},
	{
		Key:        "BONK",
		CoinID:     "bonk",
		CoinSymbol: "BONK",
		Color:      "#ff6b35",
		Companies: []Company{
			{Ticker: "BNKK", Name: "Bonk Inc."},
		},
	},
	{
		Key:        "IP",
		CoinID:     "story-protocol",
		CoinSymbol: "IP",
		Color:      "#9945ff",
		Companies: []Company{
			{Ticker: "IPST", Name: "Heritage Distilling"},
		},
	},
}

// stockColors is the cyclic palette assigned to companies by position.
var stockColors = []string{
	"#ef4444", "#f97316", "#eab308", "#84cc16", "#22c55e",
	"#14b8a6", "#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899",
}

// Categories returns the tracked categories in declared order.
func Categories() []Category {
	return categories
}

// StockColor returns the display color for the company at position i within
// its category, cycling through the palette.
func StockColor(i int) string {
	if i < 0 {
		i = -i
	}
	return stockColors[i%len(stockColors)]
}
