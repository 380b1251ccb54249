package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("b", 1)
	lhm.Put("a", 2)
	lhm.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, lhm.Keys())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 2)

	assert.Equal(t, map[string]any{"abc": 2}, lhm.hashMap)

	value, ok := lhm.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	_, ok = lhm.Get("def")
	assert.False(t, ok)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("zeta", 1)
	lhm.Put("alpha", [2]byte{0x4E, 0x45})

	bs, err := json.Marshal(lhm)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":[78,69]}`, string(bs))

	bs, err = json.Marshal(NewLinkedHashMap[string, int]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(bs))
}
