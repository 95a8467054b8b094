package portfolio

// ComparativePerformancePoint is one date of the portfolio-vs-benchmark
// series. Both returns are rebased so the first point of the series is 0%.
type ComparativePerformancePoint struct {
	Date            Date
	PortfolioReturn Percent
	BenchmarkReturn Percent
}

// PerformerStat is one symbol's simple price return over a period.
type PerformerStat struct {
	Symbol string
	Return Percent
}

// NoPerformer is the sentinel returned by BestWorstPerformers when no symbol
// has enough observations to compute a return.
var NoPerformer = PerformerStat{Symbol: "N/A"}

// ComparativePerformance builds the portfolio-vs-benchmark return series over
// the period, anchored on the latest date of the price history.
//
// A date enters the series only when the portfolio has a positive value and
// the benchmark has a close recorded exactly on that date. An unknown
// benchmark yields an empty series and a diagnostic, never an error.
func (a *Analyzer) ComparativePerformance(benchmark string, period Period) ([]ComparativePerformancePoint, DiagnosticList) {
	var diags DiagnosticList

	anchor := a.Prices.LatestDate()
	if anchor.IsZero() {
		return nil, diags
	}
	window := period.Window(anchor)

	if _, _, n := a.Prices.FirstLast(benchmark, window); n == 0 {
		diags.Addf(MissingPrice, "no data for benchmark %q in period %s", benchmark, period)
		return nil, diags
	}

	var points []ComparativePerformancePoint
	var v0, b0 float64
	for day := range a.Prices.Dates(window) {
		bench, ok := a.Prices.PriceOn(benchmark, day)
		if !ok {
			continue
		}
		metrics, _ := a.PortfolioMetrics(day)
		value := metrics.TotalValue.AsFloat()
		if value <= 0 {
			continue
		}
		if len(points) == 0 {
			v0 = value
			b0 = bench.InexactFloat64()
		}
		points = append(points, ComparativePerformancePoint{
			Date:            day,
			PortfolioReturn: Percent(100 * (value/v0 - 1)),
			BenchmarkReturn: Percent(100 * (bench.InexactFloat64()/b0 - 1)),
		})
	}
	return points, diags
}

// BestWorstPerformers returns the held symbols with the highest and lowest
// simple price return over the period. Symbols with fewer than two
// observations in the window, or a zero opening price, are skipped. When no
// symbol qualifies both results are the NoPerformer sentinel.
func (a *Analyzer) BestWorstPerformers(period Period) (best, worst PerformerStat, diags DiagnosticList) {
	best, worst = NoPerformer, NoPerformer

	anchor := a.Prices.LatestDate()
	if anchor.IsZero() {
		return best, worst, diags
	}
	window := period.Window(anchor)

	found := false
	for symbol := range a.Ledger.Symbols() {
		first, last, n := a.Prices.FirstLast(symbol, window)
		if n < 2 {
			diags.Addf(MissingPrice, "not enough observations for %q in period %s", symbol, period)
			continue
		}
		if first.IsZero() {
			continue
		}
		ret := Percent(100 * (last.InexactFloat64()/first.InexactFloat64() - 1))
		stat := PerformerStat{Symbol: symbol, Return: ret}
		if !found {
			best, worst = stat, stat
			found = true
			continue
		}
		if ret > best.Return {
			best = stat
		}
		if ret < worst.Return {
			worst = stat
		}
	}
	return best, worst, diags
}

// IndexPerformance returns the benchmark's simple price return over the
// period, or 0 when fewer than two observations exist in the window.
func (a *Analyzer) IndexPerformance(benchmark string, period Period) Percent {
	anchor := a.Prices.LatestDate()
	if anchor.IsZero() {
		return 0
	}
	first, last, n := a.Prices.FirstLast(benchmark, period.Window(anchor))
	if n < 2 || first.IsZero() {
		return 0
	}
	return Percent(100 * (last.InexactFloat64()/first.InexactFloat64() - 1))
}
