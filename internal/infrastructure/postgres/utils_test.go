package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LOT-SKU000001-", "LOT-SKU000001-"},
		{"LOT-A_B-", `LOT-A\_B-`},
		{"LOT-10%CACAO-", `LOT-10\%CACAO-`},
		{`LOT-A\B-`, `LOT-A\\B-`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, escapeLike(c.in), c.in)
	}
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "p.id, p.sku, p.name", qualify("id, sku, name", "p"))
}
