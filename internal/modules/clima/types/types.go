package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StationRecord is one raw station object as returned by the INMET API.
// Every field is optional and may arrive as a number, a numeric string, or null.
type StationRecord map[string]any

// Float coerces the named field to a number. It never fails loudly: absent,
// null and non-numeric values all report ok=false.
func (r StationRecord) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Str returns the named field as a string, or "" when absent or not a string.
func (r StationRecord) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// TimeWindow is one UTC day observed so far: its date and every hour label
// from "0000" through the current hour, ascending.
type TimeWindow struct {
	Date  string
	Hours []string
}

// StationKey groups readings of one station across hours. A composite key, so
// station names containing separators cannot collide.
type StationKey struct {
	Nome string
	UF   string
}

// Label is the "station/state" form the report tables render.
func (k StationKey) Label() string {
	return k.Nome + "/" + k.UF
}

// StationSnapshot is one station in the /api/clima payload. Optional readings
// are pointers so missing values marshal as null, like the upstream API.
type StationSnapshot struct {
	Nome              string   `json:"nome"`
	UF                string   `json:"uf"`
	Lat               float64  `json:"lat"`
	Lon               float64  `json:"lon"`
	Temperatura       float64  `json:"temperatura"`
	TemperaturaMaxima *float64 `json:"temperatura_maxima"`
	TemperaturaMinima *float64 `json:"temperatura_minima"`
	Umidade           *float64 `json:"umidade"`
	Vento             *float64 `json:"vento"`
	Precipitacao      *float64 `json:"precipitacao"`
	Data              string   `json:"data"`
	Hora              string   `json:"hora"`
}

// Snapshot is the full /api/clima payload. The degraded (upstream failure)
// response carries only "dados"; see the controller.
type Snapshot struct {
	TotalEstacoes     int               `json:"total_estacoes"`
	UltimaAtualizacao string            `json:"ultima_atualizacao"`
	Dados             []StationSnapshot `json:"dados"`
}

// ExtremeRow is one ranked row of the daily report: the hour a station
// recorded the value that put it in the table.
type ExtremeRow struct {
	Hora    string
	Estacao StationKey
	Valor   float64
}

// RainfallTotalRow is one station's accumulated positive rainfall for the day.
type RainfallTotalRow struct {
	Estacao StationKey
	Total   float64
}

// DailyReport feeds the HTML report. Each list is ranked and capped; an empty
// list renders as a placeholder row.
type DailyReport struct {
	Data            string // report date, DD/MM/YYYY
	MaisQuentes     []ExtremeRow
	MaisFrias       []ExtremeRow
	MaioresChuvas   []ExtremeRow
	AcumuladosChuva []RainfallTotalRow
}
