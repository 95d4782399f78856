package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSealed(t *testing.T) {
	var _ Value = Null{}
	var _ Value = String("test")
	var _ Value = Int(42)
	var _ Value = Number("1.5")
	var _ Value = Bool(true)
	var _ Value = Array{String("a"), Int(1)}
	var _ Value = Object{"key": String("value")}
}

func TestDecodeObject_Scalars(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"s":"x","i":25544,"f":1.5,"e":1e3,"b":true,"n":null}`))
	require.NoError(t, err)

	assert.Equal(t, String("x"), obj["s"])
	assert.Equal(t, Int(25544), obj["i"])
	assert.Equal(t, Number("1.5"), obj["f"])
	assert.Equal(t, Number("1e3"), obj["e"])
	assert.Equal(t, Bool(true), obj["b"])
	assert.Equal(t, Null{}, obj["n"])
}

func TestDecodeObject_LargeIntegerIsNumber(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"big":123456789012345678901234567890}`))
	require.NoError(t, err)
	assert.Equal(t, Number("123456789012345678901234567890"), obj["big"])
	assert.True(t, obj["big"].(Number).IsInteger())
	assert.False(t, Number("1.5").IsInteger())
	assert.False(t, Number("2E10").IsInteger())
}

func TestDecodeObject_Containers(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"aliases":["ISS",7,["nested"]],"meta":{"k":"v"}}`))
	require.NoError(t, err)

	arr, ok := obj["aliases"].(Array)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, String("ISS"), arr[0])
	assert.Equal(t, Int(7), arr[1])
	assert.Equal(t, Array{String("nested")}, arr[2])

	assert.Equal(t, Object{"k": String("v")}, obj["meta"])
}

func TestDecodeObject_NotJSON(t *testing.T) {
	for _, body := range []string{"", "   ", "{", "not json", `{"a":1} trailing`} {
		_, err := DecodeObject([]byte(body))
		assert.ErrorIs(t, err, ErrNotJSON, "body %q", body)
	}
}

func TestDecodeObject_NotObject(t *testing.T) {
	for _, body := range []string{`[]`, `"x"`, `42`, `null`} {
		_, err := DecodeObject([]byte(body))
		assert.ErrorIs(t, err, ErrNotObject, "body %q", body)
	}
}

func TestObjectLookup_DistinguishesAbsentFromNull(t *testing.T) {
	obj := Object{"present": Null{}}

	v, ok := obj.Lookup("present")
	assert.True(t, ok)
	assert.Equal(t, Null{}, v)

	_, ok = obj.Lookup("absent")
	assert.False(t, ok)
}

func TestObjectSortedKeys(t *testing.T) {
	obj := Object{"tle": Null{}, "aliases": Null{}, "display_name": Null{}}
	assert.Equal(t, []string{"aliases", "display_name", "tle"}, obj.SortedKeys())
}

func TestObjectFromMap(t *testing.T) {
	obj, err := ObjectFromMap(map[string]any{
		"display_name":  "ISS",
		"satcat_number": 25544,
		"aliases":       []any{"Zarya", 3},
		"tags":          []string{"iss"},
		"ratio":         0.5,
		"missing":       nil,
	})
	require.NoError(t, err)

	assert.Equal(t, String("ISS"), obj["display_name"])
	assert.Equal(t, Int(25544), obj["satcat_number"])
	assert.Equal(t, Array{String("Zarya"), Int(3)}, obj["aliases"])
	assert.Equal(t, Array{String("iss")}, obj["tags"])
	assert.Equal(t, Number("0.5"), obj["ratio"])
	assert.Equal(t, Null{}, obj["missing"])
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	assert.Error(t, err)

	_, err = FromAny(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}
