package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tt, err := Parse("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", tt.Format("15:04:05"))

	tt, err = Parse("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", tt.Format("15:04:05"))

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("meio-dia")
	assert.Error(t, err)
}

func TestScanEValue(t *testing.T) {
	var tt Tod
	require.NoError(t, tt.Scan("14:15:16"))
	v, err := tt.Value()
	require.NoError(t, err)
	assert.Equal(t, "14:15:16", v)

	// driver do Postgres entrega time.Time
	require.NoError(t, tt.Scan(time.Date(2026, 9, 15, 8, 45, 0, 0, time.Local)))
	v, err = tt.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:45:00", v)
}

func TestSomenteData(t *testing.T) {
	agora := time.Date(2026, 9, 15, 17, 42, 13, 99, time.Local)
	d := SomenteData(agora)
	assert.Equal(t, "2026-09-15", d.Format(LayoutData))
	assert.Equal(t, time.UTC, d.Location())
	assert.Zero(t, d.Hour())
}

func TestMesmaData(t *testing.T) {
	a, _ := ParseData("2026-09-15")
	b := time.Date(2026, 9, 15, 23, 0, 0, 0, time.UTC)
	c, _ := ParseData("2026-09-16")
	assert.True(t, MesmaData(a, b))
	assert.False(t, MesmaData(a, c))
}
