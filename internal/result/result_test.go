package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describe(r Result[int]) string {
	return Match(r,
		func(data int) string { return "success:" + strconv.Itoa(data) },
		func(msg string) string { return "fail:" + msg },
		func(msg string) string { return "error:" + msg },
	)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		r    Result[int]
		want string
		kind Kind
	}{
		{name: "success", r: Success(42), want: "success:42", kind: KindSuccess},
		{name: "fail", r: Fail[int]("not found"), want: "fail:not found", kind: KindFail},
		{name: "fail with empty message", r: Fail[int](""), want: "fail:", kind: KindFail},
		{name: "error", r: Error[int]("timeout"), want: "error:timeout", kind: KindError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.r))
			assert.Equal(t, tt.kind, tt.r.Kind())
		})
	}
}

func TestData(t *testing.T) {
	data, ok := Success([]string{"a"}).Data()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, data)

	data, ok = Fail[[]string]("nope").Data()
	assert.False(t, ok)
	assert.Nil(t, data)

	_, ok = Error[[]string]("boom").Data()
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Success(1).Message())
	assert.Equal(t, "nope", Fail[int]("nope").Message())
	assert.Equal(t, "boom", Error[int]("boom").Message())
}

func TestMatch_ZeroValuePanics(t *testing.T) {
	var r Result[int]
	assert.Panics(t, func() { describe(r) })
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	got, ok := Map(Success(21), double).Data()
	require.True(t, ok)
	assert.Equal(t, 42, got)

	failed := Map(Fail[int]("nope"), double)
	assert.Equal(t, KindFail, failed.Kind())
	assert.Equal(t, "nope", failed.Message())

	errored := Map(Error[int]("boom"), double)
	assert.Equal(t, KindError, errored.Kind())
	assert.Equal(t, "boom", errored.Message())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "fail", KindFail.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
