// Package analytics contiene el motor de agregación del dashboard de ventas:
// funciones puras que convierten transacciones, productos, vendedores y deudas
// en un MetricsSnapshot. No hace I/O ni lee el reloj del sistema.
package analytics

import "github.com/shopspring/decimal"

// Entry par clave/valor de un Tally.
type Entry struct {
	Key   string
	Value decimal.Decimal
}

// Tally es un mapa clave → suma que conserva el orden de primera aparición.
// El orden de inserción es el desempate de los rankings, por eso no se usa un map simple.
// El valor cero está listo para usarse.
type Tally struct {
	keys   []string
	values map[string]decimal.Decimal
}

// NewTally construye un Tally vacío.
func NewTally() *Tally {
	return &Tally{values: make(map[string]decimal.Decimal)}
}

// Add suma v a la clave; si la clave es nueva queda al final del orden.
func (t *Tally) Add(key string, v decimal.Decimal) {
	if t.values == nil {
		t.values = make(map[string]decimal.Decimal)
	}
	cur, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
		t.values[key] = v
		return
	}
	t.values[key] = cur.Add(v)
}

// Get devuelve el acumulado de la clave.
func (t *Tally) Get(key string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	v, ok := t.values[key]
	return v, ok
}

func (t *Tally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys devuelve una copia de las claves en orden de primera aparición.
func (t *Tally) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries devuelve los pares en orden de primera aparición.
func (t *Tally) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Entry{Key: k, Value: t.values[k]})
	}
	return out
}

// Sum total de todos los valores.
func (t *Tally) Sum() decimal.Decimal {
	sum := decimal.Zero
	if t == nil {
		return sum
	}
	for _, k := range t.keys {
		sum = sum.Add(t.values[k])
	}
	return sum
}
