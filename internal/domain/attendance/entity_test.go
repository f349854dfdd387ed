package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayJSON(t *testing.T) {
	out, err := json.Marshal(NewTimeOfDay(8, 5))
	require.NoError(t, err)
	assert.Equal(t, `"08:05"`, string(out))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"18:15"`), &parsed))
	assert.Equal(t, NewTimeOfDay(18, 15), parsed)
	assert.Equal(t, 18, parsed.Hour())
	assert.Equal(t, 15, parsed.Minute())

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`"0815"`), &parsed))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, Status("present").Valid())
	assert.True(t, Status("late").Valid())
	assert.True(t, Status("on_leave").Valid())
	assert.False(t, Status("absent").Valid())
	assert.False(t, Status("").Valid())
}

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, RequestStatus("pending").Valid())
	assert.True(t, RequestStatus("approved").Valid())
	assert.True(t, RequestStatus("rejected").Valid())
	assert.False(t, RequestStatus("withdrawn").Valid())
}
