package screens

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// Point is one close price.
type Point struct {
	Time  time.Time
	Value float64
}

var basePrices = map[string]float64{
	"AAPL":  190,
	"GOOGL": 140,
	"MSFT":  410,
	"TSLA":  240,
	"AMZN":  175,
	"NVDA":  880,
}

var timeframeSteps = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"1H":  time.Hour,
	"4H":  4 * time.Hour,
	"1D":  24 * time.Hour,
	"1W":  7 * 24 * time.Hour,
	"1M":  30 * 24 * time.Hour,
}

// seriesEnd anchors every series so the chart does not move between frames.
var seriesEnd = time.Date(2024, time.March, 1, 16, 0, 0, 0, time.UTC)

// Series is a random walk seeded by symbol and timeframe. The same inputs
// always give the same prices.
func Series(symbol, timeframe string, n int) []Point {
	h := fnv.New64a()
	h.Write([]byte(symbol + "/" + timeframe))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	step, ok := timeframeSteps[timeframe]
	if !ok {
		step = 24 * time.Hour
	}
	price, ok := basePrices[symbol]
	if !ok {
		price = 100
	}
	vol := 0.01 * math.Sqrt(step.Hours()/24+0.05)

	out := make([]Point, n)
	start := seriesEnd.Add(-step * time.Duration(n-1))
	for i := range out {
		price *= 1 + vol*rng.NormFloat64()
		out[i] = Point{Time: start.Add(step * time.Duration(i)), Value: math.Round(price*100) / 100}
	}
	return out
}

// SMA is the simple moving average over period points. The first period-1
// entries are NaN.
func SMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(period)
	}
	return out
}

// EMA is the exponential moving average seeded with the first value.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	k := 2 / float64(period+1)
	for i, v := range values {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = v*k + out[i-1]*(1-k)
	}
	return out
}

// RSI is the relative strength index of the last period changes, in 0..100.
func RSI(values []float64, period int) float64 {
	if len(values) <= period {
		return math.NaN()
	}
	var gain, loss float64
	for i := len(values) - period; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100
	}
	rs := gain / loss
	return 100 - 100/(1+rs)
}

func closes(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
