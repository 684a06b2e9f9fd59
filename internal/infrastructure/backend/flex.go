package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// El backend no es estricto con los tipos: los números pueden llegar como
// número JSON, como string numérico, vacíos o null.

// flexDecimal decimal tolerante: null, "" o texto no numérico valen cero.
type flexDecimal struct {
	decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	v, _ := parseFlexDecimal(b)
	f.Decimal = v
	return nil
}

// optDecimal decimal opcional: null, ausente, "" o no numérico quedan como no definido.
type optDecimal struct {
	Valid bool
	Value decimal.Decimal
}

func (o *optDecimal) UnmarshalJSON(b []byte) error {
	o.Value, o.Valid = parseFlexDecimal(b)
	return nil
}

// Ptr devuelve nil si no está definido.
func (o optDecimal) Ptr() *decimal.Decimal {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func parseFlexDecimal(b []byte) (decimal.Decimal, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return decimal.Zero, false
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// flexInt entero tolerante; los decimales se truncan y lo inválido vale cero.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	v, ok := parseFlexDecimal(b)
	if !ok {
		*f = 0
		return nil
	}
	*f = flexInt(v.Truncate(0).IntPart())
	return nil
}

// flexTime fecha RFC 3339 (con o sin fracción) o epoch en milisegundos.
// Lo que no se puede interpretar queda como time.Time{}.
type flexTime struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z07:00", "2006-01-02T15:04:05", "2006-01-02"}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	f.Time = time.Time{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] != '"' {
		if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			f.Time = time.UnixMilli(ms).UTC()
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return nil
}
