package cfgm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
)

func TestValue_Kind(t *testing.T) {
	tests := []struct {
		value cfgm.Value
		want  cfgm.Kind
	}{
		{cfgm.Null, cfgm.NullKind},
		{cfgm.Bool(true), cfgm.BoolKind},
		{cfgm.Int(1), cfgm.NumberKind},
		{cfgm.Float(1.5), cfgm.NumberKind},
		{cfgm.String("s"), cfgm.StringKind},
		{cfgm.ValueOf([]int{1}), cfgm.SequenceKind},
		{cfgm.ValueOf(map[string]any{"a": 1}), cfgm.MappingKind},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Kind())
		})
	}
}

func TestValue_Narrowing(t *testing.T) {
	s, ok := cfgm.String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = cfgm.Int(1).AsString()
	assert.False(t, ok)

	b, ok := cfgm.Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	i, ok := cfgm.Float(3).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	_, ok = cfgm.Float(3.5).AsInt()
	assert.False(t, ok)

	f, ok := cfgm.Int(2).AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, f, 0)

	_, ok = cfgm.String("2").AsInt()
	assert.False(t, ok, "no implicit string conversion")

	seq, ok := cfgm.ValueOf([]any{"a", 1}).AsSlice()
	assert.True(t, ok)
	assert.Equal(t, []cfgm.Value{cfgm.String("a"), cfgm.Int(1)}, seq)

	m, ok := cfgm.ValueOf(map[any]any{"a": true, 1: "one"}).AsMap()
	assert.True(t, ok)
	assert.Equal(t, map[string]cfgm.Value{"a": cfgm.Bool(true), "1": cfgm.String("one")}, m)

	_, ok = cfgm.Null.AsMap()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "null", cfgm.Null.String())
	assert.Equal(t, "5432", cfgm.Int(5432).String())
	assert.Equal(t, "true", cfgm.Bool(true).String())
}
