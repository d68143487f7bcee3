package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

func fp(v float64) *float64 { return &v }

// cells builds post-label values from raw strings.
func cells(raw ...string) []models.NormalizedCell {
	return NormalizeRow(raw)
}

// cardioValues returns 14 post-label values with a range cell at position 0.
func cardioValues(pacerMin, pacerMax, bmiA, bmiB string) []models.NormalizedCell {
	raw := make([]string, 14)
	raw[0] = "19:25"
	raw[2] = pacerMin
	raw[3] = pacerMax
	raw[12] = bmiA
	raw[13] = bmiB
	return cells(raw...)
}

func TestMuscularSchemaWidth(t *testing.T) {
	assert.Equal(t, 11, MuscularSchema.Width())
	assert.Equal(t, 14, CardioSchema.Width())
}

func TestCardioSchema_BMIOrderIndependent(t *testing.T) {
	ascending, skip := CardioSchema.Extract(cardioValues("", "", "19", "25"))
	require.Empty(t, skip)
	descending, skip := CardioSchema.Extract(cardioValues("", "", "25", "19"))
	require.Empty(t, skip)

	want := models.MetricRange{Min: fp(19), Max: fp(25)}
	assert.Equal(t, want, ascending[models.MetricBMI])
	assert.Equal(t, want, descending[models.MetricBMI])
}

func TestCardioSchema_SingleBMIValue(t *testing.T) {
	m, _ := CardioSchema.Extract(cardioValues("", "", "22", ""))
	assert.Equal(t, models.MetricRange{Min: fp(22), Max: fp(22)}, m[models.MetricBMI])
}

func TestCardioSchema_AbsentBMI(t *testing.T) {
	m, _ := CardioSchema.Extract(cardioValues("23", "61", "", "25"))
	assert.Nil(t, m[models.MetricBMI].Min)
	assert.Nil(t, m[models.MetricBMI].Max)
	assert.Equal(t, models.MetricRange{Min: fp(23), Max: fp(61)}, m[models.MetricPacer20])
}

func TestCardioSchema_PacerTakenAsIs(t *testing.T) {
	m, _ := CardioSchema.Extract(cardioValues("61", "23", "", ""))
	assert.Equal(t, models.MetricRange{Min: fp(61), Max: fp(23)}, m[models.MetricPacer20])

	m, _ = CardioSchema.Extract(cardioValues("8:30", "41", "", ""))
	assert.Nil(t, m[models.MetricPacer20].Min, "range cells are not numeric bounds")
	assert.Equal(t, fp(41), m[models.MetricPacer20].Max)
}

func TestCardioSchema_ShortRow(t *testing.T) {
	m, skip := CardioSchema.Extract(cells("1:2", "x", "30", "50"))
	require.Empty(t, skip)
	assert.Equal(t, models.MetricRange{Min: fp(30), Max: fp(50)}, m[models.MetricPacer20])
	assert.Equal(t, models.MetricRange{}, m[models.MetricBMI])
}

func TestMuscularSchema_ElevenValues(t *testing.T) {
	m, skip := MuscularSchema.Extract(cells("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "15.5"))
	require.Empty(t, skip)

	assert.Equal(t, models.MetricRange{Min: fp(1), Max: fp(2)}, m[models.MetricCurlup])
	assert.Equal(t, models.MetricRange{Min: fp(3), Max: fp(4)}, m[models.MetricTrunkLift])
	assert.Equal(t, models.MetricRange{Min: fp(5), Max: fp(6)}, m[models.MetricPushup90])
	assert.Equal(t, models.MetricRange{Min: fp(15.5)}, m[models.MetricSitAndReach])
	assert.NotContains(t, m, models.MetricModpull)
	assert.NotContains(t, m, models.MetricHang)
	assert.Len(t, m, 4)
}

func TestMuscularSchema_AbsentCellsAreDropped(t *testing.T) {
	m, skip := MuscularSchema.Extract(cells("", "1", "2", " ", "3", "4", "n/a", "5", "6", "7", "8", "9", "10", "", "15.5", "99", "100"))
	require.Empty(t, skip)
	assert.Equal(t, models.MetricRange{Min: fp(1), Max: fp(2)}, m[models.MetricCurlup])
	assert.Equal(t, models.MetricRange{Min: fp(15.5)}, m[models.MetricSitAndReach])
}

func TestMuscularSchema_TooFewValues(t *testing.T) {
	_, skip := MuscularSchema.Extract(cells("1", "2", "3", "4", "5", "6", "7", "8", "9"))
	assert.Equal(t, SkipInsufficientValues, skip)

	_, skip = MuscularSchema.Extract(cells("", "", "x"))
	assert.Equal(t, SkipNoValues, skip)
}
