package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Of_Literales(t *testing.T) {
	assert.Equal(t, "10.0.0.7", ipv4Of(context.Background(), "10.0.0.7"))
	assert.Equal(t, "", ipv4Of(context.Background(), "::1"))
}
