package service

import (
	"climabrasil-server/internal/modules/clima/types"
)

// BuildSnapshot keeps the stations that carry a name, coordinates and a
// current temperature, preserving upstream order. Every other reading passes
// through as a number when it coerces and null otherwise.
func BuildSnapshot(estacoes []types.StationRecord, date string, hour string) types.Snapshot {
	dados := make([]types.StationSnapshot, 0, len(estacoes))
	for _, e := range estacoes {
		nome := e.Str("DC_NOME")
		lat, latOK := e.Float("VL_LATITUDE")
		lon, lonOK := e.Float("VL_LONGITUDE")
		temp, tempOK := e.Float("TEM_INS")
		if nome == "" || !latOK || !lonOK || !tempOK {
			continue
		}

		dados = append(dados, types.StationSnapshot{
			Nome:              nome,
			UF:                e.Str("UF"),
			Lat:               lat,
			Lon:               lon,
			Temperatura:       temp,
			TemperaturaMaxima: optFloat(e, "TEM_MAX"),
			TemperaturaMinima: optFloat(e, "TEM_MIN"),
			Umidade:           optFloat(e, "UMD_INS"),
			Vento:             optFloat(e, "VEN_VEL"),
			Precipitacao:      optFloat(e, "CHUVA"),
			Data:              e.Str("DT_MEDICAO"),
			Hora:              e.Str("HR_MEDICAO"),
		})
	}

	return types.Snapshot{
		TotalEstacoes:     len(dados),
		UltimaAtualizacao: date + " " + hour,
		Dados:             dados,
	}
}

func optFloat(e types.StationRecord, key string) *float64 {
	if v, ok := e.Float(key); ok {
		return &v
	}
	return nil
}
