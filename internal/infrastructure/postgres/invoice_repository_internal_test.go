package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

func TestOrderByIDs(t *testing.T) {
	byID := map[string]*entity.Invoice{
		"a": {ID: "a"},
		"b": {ID: "b"},
		"c": {ID: "c"},
	}
	got := orderByIDs([]string{"c", "x", "a", "b", "a"}, byID)

	ids := make([]string, 0, len(got))
	for _, inv := range got {
		ids = append(ids, inv.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids, "respeta el orden y omite faltantes y repetidos")
}
