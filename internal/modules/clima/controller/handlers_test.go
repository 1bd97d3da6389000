package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"climabrasil-server/internal/modules/clima/types"
	"climabrasil-server/internal/modules/clima/views"
)

type mockFetcher struct {
	byHour map[string][]types.StationRecord
	err    error

	mu      sync.Mutex
	fetched []string // guarded by mu: hours are fetched concurrently
}

func (m *mockFetcher) FetchHour(ctx context.Context, date string, hour string) ([]types.StationRecord, error) {
	m.mu.Lock()
	m.fetched = append(m.fetched, hour)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return m.byHour[hour], nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
}

func newTestController(fetcher *mockFetcher) *climaControllerImpl {
	ctrl := NewClimaController(fetcher).(*climaControllerImpl)
	ctrl.now = fixedNow
	return ctrl
}

func Test_handleClima(t *testing.T) {
	station := types.StationRecord{
		"DC_NOME":      "BRASILIA",
		"UF":           "DF",
		"VL_LATITUDE":  -15.78,
		"VL_LONGITUDE": -47.92,
		"TEM_INS":      "24.1",
		"DT_MEDICAO":   "2026-08-27",
		"HR_MEDICAO":   "1400",
	}

	t.Run("returns snapshot of the latest hour", func(t *testing.T) {
		fetcher := &mockFetcher{byHour: map[string][]types.StationRecord{
			"1400": {station},
		}}
		ctrl := newTestController(fetcher)
		req := httptest.NewRequest(http.MethodGet, "/api/clima", nil)
		rec := httptest.NewRecorder()

		ctrl.handleClima(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Errorf("Content-Type = %q; want application/json", ct)
		}
		if len(fetcher.fetched) != 1 || fetcher.fetched[0] != "1400" {
			t.Errorf("fetched hours = %v; want just the latest hour 1400", fetcher.fetched)
		}

		var got types.Snapshot
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if got.TotalEstacoes != 1 {
			t.Errorf("total_estacoes = %d; want 1", got.TotalEstacoes)
		}
		if got.UltimaAtualizacao != "2026-08-27 1400" {
			t.Errorf("ultima_atualizacao = %q; want %q", got.UltimaAtualizacao, "2026-08-27 1400")
		}
		if len(got.Dados) != 1 || got.Dados[0].Nome != "BRASILIA" {
			t.Errorf("dados = %+v; want the BRASILIA station", got.Dados)
		}
	})

	t.Run("degrades to empty payload when upstream fails", func(t *testing.T) {
		ctrl := newTestController(&mockFetcher{err: errors.New("upstream timeout")})
		req := httptest.NewRequest(http.MethodGet, "/api/clima", nil)
		rec := httptest.NewRecorder()

		ctrl.handleClima(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d (never an error status)", rec.Code, http.StatusOK)
		}

		var got map[string]json.RawMessage
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if string(got["dados"]) != "[]" {
			t.Errorf("dados = %s; want []", got["dados"])
		}
		if _, present := got["total_estacoes"]; present {
			t.Error("degraded payload carries total_estacoes; want it absent")
		}
		if _, present := got["ultima_atualizacao"]; present {
			t.Error("degraded payload carries ultima_atualizacao; want it absent")
		}
	})
}

func Test_handleRelatorioDiario(t *testing.T) {
	t.Run("renders HTML report over the whole window", func(t *testing.T) {
		if err := views.LoadTemplates(); err != nil {
			t.Fatalf("LoadTemplates(): %v", err)
		}

		fetcher := &mockFetcher{byHour: map[string][]types.StationRecord{
			"1000": {{"DC_NOME": "CUIABA", "UF": "MT", "TEM_INS": 38.0}},
		}}
		ctrl := newTestController(fetcher)
		req := httptest.NewRequest(http.MethodGet, "/relatorio/diario", nil)
		rec := httptest.NewRecorder()

		ctrl.handleRelatorioDiario(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %q; want text/html; charset=utf-8", ct)
		}
		// 14:30 UTC: hours 0000 through 1400.
		if len(fetcher.fetched) != 15 {
			t.Errorf("fetched %d hours; want 15", len(fetcher.fetched))
		}

		body := rec.Body.String()
		if !strings.Contains(body, "CUIABA/MT") {
			t.Errorf("body missing station row; got %q", body)
		}
		if !strings.Contains(body, "Relatório Diário") {
			t.Errorf("body missing report title; got %q", body)
		}
	})

	t.Run("degrades to placeholder rows when every fetch fails", func(t *testing.T) {
		if err := views.LoadTemplates(); err != nil {
			t.Fatalf("LoadTemplates(): %v", err)
		}

		ctrl := newTestController(&mockFetcher{err: errors.New("upstream down")})
		req := httptest.NewRequest(http.MethodGet, "/relatorio/diario", nil)
		rec := httptest.NewRecorder()

		ctrl.handleRelatorioDiario(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d (best-effort report)", rec.Code, http.StatusOK)
		}
		if got := strings.Count(rec.Body.String(), "Sem registros"); got != 4 {
			t.Errorf("placeholder rows = %d; want 4", got)
		}
	})
}
