package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

func fp(v float64) *float64 { return &v }

func sampleTable() models.StandardsTable {
	boys := models.NewSexStandards()
	boys.Cardio["10"] = models.CardioRecord{
		Pacer20: models.MetricRange{Min: fp(23), Max: fp(61)},
		BMI:     models.MetricRange{Min: fp(15.3), Max: fp(21)},
	}
	boys.Cardio["17+"] = models.CardioRecord{
		Pacer20: models.MetricRange{Min: fp(61), Max: fp(94)},
	}
	boys.Muscular["10"] = models.MuscularRecord{
		Curlup:      models.MetricRange{Min: fp(12), Max: fp(24)},
		TrunkLift:   models.MetricRange{Min: fp(9), Max: fp(12)},
		Pushup90:    models.MetricRange{Min: fp(7), Max: fp(20)},
		SitAndReach: models.MinBound{Min: fp(8)},
	}

	return models.StandardsTable{
		models.SexBoys:  boys,
		models.SexGirls: models.NewSexStandards(),
	}
}

func TestToJSON_Shape(t *testing.T) {
	data, err := ToJSON(sampleTable(), false)
	require.NoError(t, err)

	var generic map[string]map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))

	require.Contains(t, generic, "boys")
	require.Contains(t, generic, "girls")
	assert.Empty(t, generic["girls"]["cardio"])
	assert.Empty(t, generic["girls"]["muscular"])

	bmi := generic["boys"]["cardio"]["17+"]["bmi"].(map[string]any)
	assert.Contains(t, bmi, "min")
	assert.Nil(t, bmi["min"])
	assert.Nil(t, bmi["max"])

	sit := generic["boys"]["muscular"]["10"]["sitAndReach"].(map[string]any)
	assert.Equal(t, map[string]any{"min": 8.0}, sit)

	assert.Len(t, generic["boys"]["muscular"]["10"], 4)
	assert.NotContains(t, generic["boys"]["muscular"]["10"], "modpull")
}

func TestToJSON_NullLiteral(t *testing.T) {
	data, err := ToJSON(sampleTable(), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bmi":{"min":null,"max":null}`)
}

func TestToJSON_Pretty(t *testing.T) {
	compact, err := ToJSON(sampleTable(), false)
	require.NoError(t, err)
	pretty, err := ToJSON(sampleTable(), true)
	require.NoError(t, err)

	assert.Contains(t, string(pretty), "\n  \"boys\": {")
	assert.JSONEq(t, string(compact), string(pretty))
}

func TestRoundTrip(t *testing.T) {
	table := sampleTable()

	data, err := ToJSON(table, true)
	require.NoError(t, err)

	parsed, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, table, parsed)
}

func TestSexToJSON(t *testing.T) {
	table := sampleTable()
	boys := table[models.SexBoys]

	data, err := SexToJSON(&boys, false)
	require.NoError(t, err)

	var parsed models.SexStandards
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, boys, parsed)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"boys": []}`))
	assert.Error(t, err)
}
