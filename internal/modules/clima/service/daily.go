package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"climabrasil-server/internal/modules/clima/inmet"
	"climabrasil-server/internal/modules/clima/types"
)

const topN = 10

// BuildDailyReport fetches every hour of the window and ranks the day's
// extremes. Hours whose fetch fails are skipped; the report is best-effort.
func BuildDailyReport(ctx context.Context, fetcher inmet.HourFetcher, window types.TimeWindow, now time.Time) types.DailyReport {
	hourly := fetchAllHours(ctx, fetcher, window)

	var (
		maximas   = newExtremePool(keepGreater)
		minimas   = newExtremePool(keepSmaller)
		chuvas    []types.ExtremeRow
		acumulado = newRainfallTotals()
	)

	// Merge strictly in hour order so first-seen-wins ties and ranking
	// stability hold no matter how the fetches interleaved.
	for i, hora := range window.Hours {
		for _, e := range hourly[i] {
			key := types.StationKey{Nome: e.Str("DC_NOME"), UF: e.Str("UF")}

			// Both temperature pools read the instantaneous temperature: the
			// day's extremes are the hottest and coldest hourly readings, so a
			// station observed once is a candidate for both tables.
			if v, ok := e.Float("TEM_INS"); ok {
				maximas.observe(key, hora, v)
				minimas.observe(key, hora, v)
			}
			if v, ok := e.Float("CHUVA"); ok && v > 0 {
				chuvas = append(chuvas, types.ExtremeRow{Hora: hora, Estacao: key, Valor: v})
				acumulado.add(key, v)
			}
		}
	}

	return types.DailyReport{
		Data:            now.UTC().Format("02/01/2006"),
		MaisQuentes:     rank(maximas.rows(), descending),
		MaisFrias:       rank(minimas.rows(), ascending),
		MaioresChuvas:   rank(chuvas, descending),
		AcumuladosChuva: acumulado.ranked(),
	}
}

// fetchAllHours runs one fetch per hour concurrently, collecting results into
// a slice indexed by the hour's position in the window. The hours are
// independent and no aggregation state is touched until all have returned.
// A failed hour stays nil.
func fetchAllHours(ctx context.Context, fetcher inmet.HourFetcher, window types.TimeWindow) [][]types.StationRecord {
	hourly := make([][]types.StationRecord, len(window.Hours))

	var wg sync.WaitGroup
	for i, hora := range window.Hours {
		wg.Add(1)
		go func(i int, hora string) {
			defer wg.Done()
			estacoes, err := fetcher.FetchHour(ctx, window.Date, hora)
			if err != nil {
				slog.Warn("daily report: skipping hour", "date", window.Date, "hora", hora, "error", err)
				return
			}
			hourly[i] = estacoes
		}(i, hora)
	}
	wg.Wait()

	return hourly
}

func keepGreater(candidate, current float64) bool { return candidate > current }
func keepSmaller(candidate, current float64) bool { return candidate < current }

// extremePool reduces observations to one row per station, remembering the
// order in which stations were first seen.
type extremePool struct {
	better func(candidate, current float64) bool
	best   map[types.StationKey]types.ExtremeRow
	order  []types.StationKey
}

func newExtremePool(better func(candidate, current float64) bool) *extremePool {
	return &extremePool{
		better: better,
		best:   make(map[types.StationKey]types.ExtremeRow),
	}
}

// observe records a candidate. Only a strictly better value replaces the
// current one, so on ties the earlier observation keeps its hour.
func (p *extremePool) observe(key types.StationKey, hora string, valor float64) {
	current, seen := p.best[key]
	if !seen {
		p.best[key] = types.ExtremeRow{Hora: hora, Estacao: key, Valor: valor}
		p.order = append(p.order, key)
		return
	}
	if p.better(valor, current.Valor) {
		p.best[key] = types.ExtremeRow{Hora: hora, Estacao: key, Valor: valor}
	}
}

// rows returns one row per station in first-observation order.
func (p *extremePool) rows() []types.ExtremeRow {
	rows := make([]types.ExtremeRow, 0, len(p.order))
	for _, key := range p.order {
		rows = append(rows, p.best[key])
	}
	return rows
}

type rankOrder int

const (
	descending rankOrder = iota
	ascending
)

// rank stable-sorts the rows and keeps the top entries. Stability preserves
// insertion order on equal values.
func rank(rows []types.ExtremeRow, order rankOrder) []types.ExtremeRow {
	sort.SliceStable(rows, func(i, j int) bool {
		if order == ascending {
			return rows[i].Valor < rows[j].Valor
		}
		return rows[i].Valor > rows[j].Valor
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// rainfallTotals accumulates each station's positive precipitation across the
// window, in first-seen order.
type rainfallTotals struct {
	total map[types.StationKey]float64
	order []types.StationKey
}

func newRainfallTotals() *rainfallTotals {
	return &rainfallTotals{total: make(map[types.StationKey]float64)}
}

func (t *rainfallTotals) add(key types.StationKey, valor float64) {
	if _, seen := t.total[key]; !seen {
		t.order = append(t.order, key)
	}
	t.total[key] += valor
}

func (t *rainfallTotals) ranked() []types.RainfallTotalRow {
	rows := make([]types.RainfallTotalRow, 0, len(t.order))
	for _, key := range t.order {
		rows = append(rows, types.RainfallTotalRow{Estacao: key, Total: t.total[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}
