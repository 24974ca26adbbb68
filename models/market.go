package models

// Signal is the trading recommendation the backend derives from
// price-trend analysis.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalHold Signal = "HOLD"
	SignalSell Signal = "SELL"
)

// IsValid reports whether the signal is one of the three documented values.
// The client passes unknown signals through unchanged; callers talking to
// an untrusted backend can enforce this at their own boundary.
func (s Signal) IsValid() bool {
	return s == SignalBuy || s == SignalHold || s == SignalSell
}

// PricePoint is one entry of a commodity's price history.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// MarketResponse carries prices and the trading signal for one
// commodity at one mandi. History is chronological.
type MarketResponse struct {
	Commodity   string       `json:"commodity"`
	Mandi       string       `json:"mandi"`
	LatestPrice float64      `json:"latest_price"`
	SevenDayMA  float64      `json:"seven_day_ma"`
	Signal      Signal       `json:"signal"`
	History     []PricePoint `json:"history"`
	Meta        Meta         `json:"meta"`
}

// CommodityInfo describes one commodity available for price queries.
type CommodityInfo struct {
	Name  string `json:"name"`
	Value string `json:"value"` // query parameter form, e.g. "wheat"
	Unit  string `json:"unit"`  // e.g. "quintal"
}

// CommodityList is the catalogue of queryable commodities.
type CommodityList struct {
	Commodities []CommodityInfo `json:"commodities"`
}

// MandiInfo describes one wholesale market.
type MandiInfo struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// MandiList is the catalogue of known mandis, optionally state-filtered.
type MandiList struct {
	Mandis []MandiInfo `json:"mandis"`
}

// MarketStatistics summarises a commodity's price behaviour over a period.
type MarketStatistics struct {
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	AvgPrice      float64 `json:"avg_price"`
	CurrentPrice  float64 `json:"current_price"`
	VolatilityPct float64 `json:"volatility_pct"`
}

// MarketAnalysis is the extended per-commodity price analysis.
type MarketAnalysis struct {
	Commodity  string           `json:"commodity"`
	PeriodDays int              `json:"period_days"`
	History    []PricePoint     `json:"history"`
	Statistics MarketStatistics `json:"statistics"`
	Insights   []string         `json:"insights"`
}
