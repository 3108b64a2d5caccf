package enumjson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celerik/go-baseline/enums"
	"github.com/celerik/go-baseline/enums/enumjson"
	"github.com/celerik/go-baseline/enums/enumtest"
)

type severity int

const (
	sevLow severity = iota + 1
	sevMedium
	sevHigh
	sevFatal
)

var severities = enums.New[severity]("Severity").
	Add(sevLow, "Low", enums.WithCode("LO"), enums.WithDescription("Low severity")).
	Add(sevMedium, "Medium", enums.WithCode("MD"), enums.WithDescription("Medium severity")).
	Add(sevHigh, "High", enums.WithCode("HI"), enums.WithDescription("High severity")).
	Add(sevFatal, "Fatal").
	MustRegister()

type unknown int

func TestMarshal(t *testing.T) {
	b, err := json.Marshal(enumjson.Coded[severity]{V: sevHigh})
	require.NoError(t, err)
	assert.JSONEq(t, `"HI"`, string(b))

	// No code tag: declared name on the wire.
	b, err = json.Marshal(enumjson.Coded[severity]{V: sevFatal})
	require.NoError(t, err)
	assert.JSONEq(t, `"Fatal"`, string(b))

	// Undefined value: decimal fallback keeps marshaling infallible.
	b, err = json.Marshal(enumjson.Coded[severity]{V: severity(9)})
	require.NoError(t, err)
	assert.JSONEq(t, `"9"`, string(b))
}

func TestUnmarshal(t *testing.T) {
	cases := []struct {
		wire string
		want severity
	}{
		{`"MD"`, sevMedium},          // code tag
		{`"High severity"`, sevHigh}, // description tag
		{`"Fatal"`, sevFatal},        // declared name
	}
	for _, tc := range cases {
		var c enumjson.Coded[severity]
		require.NoError(t, json.Unmarshal([]byte(tc.wire), &c), "wire %s", tc.wire)
		assert.Equal(t, tc.want, c.V, "wire %s", tc.wire)
	}
}

func TestUnmarshalUnknownValue(t *testing.T) {
	var c enumjson.Coded[severity]
	err := json.Unmarshal([]byte(`"shrug"`), &c)
	require.Error(t, err)
	enumtest.AssertInvalidArgument(t, err)
}

func TestUnregisteredType(t *testing.T) {
	_, err := json.Marshal(enumjson.Coded[unknown]{V: 1})
	require.Error(t, err)
	var c enumjson.Coded[unknown]
	err = json.Unmarshal([]byte(`"x"`), &c)
	require.Error(t, err)
}

func TestStructField(t *testing.T) {
	type event struct {
		Name     string                   `json:"name"`
		Severity enumjson.Coded[severity] `json:"severity"`
	}
	b, err := json.Marshal(event{Name: "disk", Severity: enumjson.Coded[severity]{V: sevLow}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"disk","severity":"LO"}`, string(b))

	var got event
	require.NoError(t, json.Unmarshal([]byte(`{"name":"disk","severity":"Medium severity"}`), &got))
	assert.Equal(t, sevMedium, got.Severity.V)
}

func TestMarshalByCode(t *testing.T) {
	b, err := enumjson.MarshalByCode(severities, sevMedium)
	require.NoError(t, err)
	assert.JSONEq(t, `"MD"`, string(b))

	got, err := enumjson.UnmarshalByCode(severities, []byte(`"LO"`))
	require.NoError(t, err)
	assert.Equal(t, sevLow, got)

	_, err = enumjson.UnmarshalByCode(severities, []byte(`"nope"`))
	enumtest.AssertInvalidArgument(t, err)
}

func TestRegisteredRoundTrips(t *testing.T) {
	v := enumtest.RequireSet(t, severity(0))
	enumtest.AssertRoundTrips(t, v)
}
