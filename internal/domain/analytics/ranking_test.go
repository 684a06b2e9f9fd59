package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopN_EstableEnEmpates(t *testing.T) {
	tl := NewTally()
	tl.Add("Bebidas", d("50"))
	tl.Add("Snacks", d("80"))
	tl.Add("Aseo", d("50"))
	tl.Add("Lácteos", d("50"))

	got := TopN(tl, DefaultTopN)
	assert.Equal(t, []string{"Snacks", "Bebidas", "Aseo", "Lácteos"}, keys(got))

	// Repetir el ranking produce el mismo orden
	for i := 0; i < 10; i++ {
		assert.Equal(t, keys(got), keys(TopN(tl, DefaultTopN)))
	}
}

func TestTopN_TruncaYSumaAcotada(t *testing.T) {
	tl := NewTally()
	for i := 0; i < 8; i++ {
		tl.Add(fmt.Sprintf("k%d", i), d(fmt.Sprintf("%d", i+1)))
	}

	top := TopN(tl, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "k7", top[0].Key)

	sum := func(es []RankedEntry) string {
		s := d("0")
		for _, e := range es {
			s = s.Add(e.Value)
		}
		return s.String()
	}
	assert.True(t, d(sum(top)).LessThanOrEqual(tl.Sum()))

	// N >= claves distintas → igualdad
	assertDec(t, tl.Sum().String(), d(sum(TopN(tl, 8))))
	assert.Len(t, TopN(tl, 0), 8)
}

func TestTopN_Vacio(t *testing.T) {
	assert.Empty(t, TopN(NewTally(), 5))
	assert.Empty(t, TopN(nil, 5))
}
