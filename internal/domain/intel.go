package domain

// MonthCalendar is the month view of fares for a leg.
type MonthCalendar struct {
	// Dates maps YYYY-MM-DD to the cheapest fare found on that day
	Dates      map[string]CalendarDay `json:"dates"`
	MonthStats MonthStats             `json:"month_stats"`
}

// MonthStats summarizes a month calendar.
type MonthStats struct {
	CheapestPrice    float64 `json:"cheapest_price"`
	CheapestDate     string  `json:"cheapest_date"`
	AvgPrice         float64 `json:"avg_price"`
	DatesWithFlights int     `json:"dates_with_flights"`
	DatesWithDirect  int     `json:"dates_with_direct"`
}

// IsEmpty reports whether the backend returned no dated fares.
func (c MonthCalendar) IsEmpty() bool {
	return len(c.Dates) == 0
}

// PriceMatrix is the date x airline fare grid for a leg.
type PriceMatrix struct {
	Dates    []string        `json:"dates"`
	Airlines []MatrixAirline `json:"airlines"`

	// Prices maps date -> airline code -> cheapest fare
	Prices map[string]map[string]float64 `json:"prices"`
}

// MatrixAirline is a column header of the price matrix.
type MatrixAirline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IsEmpty reports whether the matrix has no priced cells.
func (m PriceMatrix) IsEmpty() bool {
	for _, row := range m.Prices {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// AdviceRecommendation is the advisor's booking verdict.
type AdviceRecommendation string

// Advisor verdicts.
const (
	AdviceBookNow AdviceRecommendation = "book_now"
	AdviceWait    AdviceRecommendation = "wait"
	AdviceNeutral AdviceRecommendation = "neutral"
)

// PriceAdvice is the advisor recommendation for a leg.
type PriceAdvice struct {
	Recommendation AdviceRecommendation `json:"recommendation"`
	Confidence     float64              `json:"confidence"`
	Headline       string               `json:"headline"`
	Analysis       string               `json:"analysis"`
	Factors        []AdviceFactor       `json:"factors"`
}

// AdviceFactor is one input the advisor weighed.
type AdviceFactor struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
	Detail string `json:"detail,omitempty"`
}

// PriceTrend holds the price history for a leg and its route.
type PriceTrend struct {
	LegTrend     []TrendPoint `json:"leg_trend"`
	RouteHistory []TrendPoint `json:"route_history"`
}

// TrendPoint is one observation in a price history.
type TrendPoint struct {
	Date     string  `json:"date"`
	MinPrice float64 `json:"min_price"`
	AvgPrice float64 `json:"avg_price,omitempty"`
}

// PriceContext places the current fare within historical quartiles.
// Available=false is a defined "no data" answer, not a loading state.
type PriceContext struct {
	Available    bool                 `json:"available"`
	Historical   *HistoricalQuartiles `json:"historical,omitempty"`
	CurrentPrice float64              `json:"current_price,omitempty"`
	Percentile   float64              `json:"percentile,omitempty"`
}

// HistoricalQuartiles is the fare distribution seen for a route.
type HistoricalQuartiles struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// UnavailablePriceContext is stored when the context lookup fails so callers
// render the empty state instead of retrying.
var UnavailablePriceContext = PriceContext{Available: false}
