package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBaseUnit(t *testing.T) {
	m, err := Query("meter")
	require.NoError(t, err)
	assert.Equal(t, "1 meter", m.String())
}

func TestQueryPluralForm(t *testing.T) {
	v, err := Query("meters")
	require.NoError(t, err)
	assert.Equal(t, "1 meter", v.String())
}

func TestQueryShortPrefixCombination(t *testing.T) {
	km, err := Query("km")
	require.NoError(t, err)
	assert.Equal(t, "1 km", km.String())
}

func TestQueryDerivedUnit(t *testing.T) {
	n, err := Query("newton")
	require.NoError(t, err)
	assert.Equal(t, "1 newton", n.String())
}

func TestQueryUnknownIdentifier(t *testing.T) {
	_, err := Query("not_a_real_unit")
	require.Error(t, err)
}

func TestQueryQuotedAdHocUnit(t *testing.T) {
	v, err := Query("'widget'")
	require.NoError(t, err)
	assert.Equal(t, "1 widget", v.String())
}

func TestQueryFootToInch(t *testing.T) {
	foot, err := Query("foot")
	require.NoError(t, err)
	inch, err := Query("inch")
	require.NoError(t, err)
	converted, err := foot.ConvertTo(inch)
	require.NoError(t, err)
	assert.Equal(t, "12 inches", converted.String())
}

func TestQueryPercent(t *testing.T) {
	v, err := Query("percent")
	require.NoError(t, err)
	assert.Equal(t, "1 percent", v.String())
}

func TestQueryNumberWord(t *testing.T) {
	dozen, err := Query("dozen")
	require.NoError(t, err)
	assert.Equal(t, "12", dozen.String())

	gross, err := Query("gross")
	require.NoError(t, err)
	assert.Equal(t, "144", gross.String())
}

func TestQueryCurrencyConvertsThroughEURAnchor(t *testing.T) {
	usd, err := Query("USD")
	require.NoError(t, err)
	eur, err := Query("EUR")
	require.NoError(t, err)
	converted, err := usd.ConvertTo(eur)
	require.NoError(t, err)
	assert.Equal(t, "1.1964 EUR", converted.String())
}

func TestQueryTroyOunceToGrains(t *testing.T) {
	ozt, err := Query("troy_ounce")
	require.NoError(t, err)
	grain, err := Query("grain")
	require.NoError(t, err)
	converted, err := ozt.ConvertTo(grain)
	require.NoError(t, err)
	assert.Equal(t, "480 grains", converted.String())
}

func TestQueryDecimalHourToMinutes(t *testing.T) {
	dh, err := Query("decimal_hour")
	require.NoError(t, err)
	minute, err := Query("minute")
	require.NoError(t, err)
	converted, err := dh.ConvertTo(minute)
	require.NoError(t, err)
	assert.Equal(t, "144 minutes", converted.String())
}
