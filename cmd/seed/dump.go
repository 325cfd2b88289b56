package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// Claves que solo existen en el formato camelCase de la aplicación web.
var legacyKeys = []string{"createdAt", "reportedBy", "productName"}

func readDump(path string, cp1252 bool) ([]*entity.Occurrence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if cp1252 {
		r = transform.NewReader(f, charmap.Windows1252.NewDecoder())
	}
	return decodeDump(r)
}

// decodeDump acepta un arreglo JSON en cualquiera de los dos formatos conocidos,
// decidido registro a registro: el de localStorage (camelCase, etiquetas) o el
// documento persistido por el servicio (snake_case, códigos).
func decodeDump(r io.Reader) ([]*entity.Occurrence, error) {
	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}

	occs := make([]*entity.Occurrence, 0, len(raw))
	for i, fields := range raw {
		b, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i, err)
		}
		o, err := decodeRecord(b, isLegacy(fields))
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i, err)
		}
		occs = append(occs, o)
	}
	return occs, nil
}

func decodeRecord(b []byte, legacy bool) (*entity.Occurrence, error) {
	if legacy {
		var l dto.LegacyOccurrence
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
		return l.ToEntity()
	}
	var rec dto.OccurrenceRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec.ToEntity(), nil
}

func isLegacy(fields map[string]json.RawMessage) bool {
	for _, k := range legacyKeys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}
