package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSlots(t *testing.T) {
	assert.Equal(t, []string{"", "", "", "", ""}, SplitSlots(""))
	assert.Equal(t, []string{"", "", "p", "", ""}, SplitSlots(",,p,,"))
	assert.Equal(t, []string{"a", "b", "", "", ""}, SplitSlots("a,b"))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, SplitSlots("a,b,c,d,e,f,g"))
	assert.Equal(t, []string{"a", "", "", "", ""}, SplitSlots(" a , , , , "))
}

func TestJoinSlots(t *testing.T) {
	assert.Equal(t, ",,,,", JoinSlots(nil))
	assert.Equal(t, "a,b,,,", JoinSlots([]string{"a", "b"}))
	assert.Equal(t, "a,b,c,d,e", JoinSlots([]string{"a", "b", "c", "d", "e", "f"}))
}

func TestSetSlot(t *testing.T) {
	assert.Equal(t, ",,p,,", SetSlot("", 2, "p"))
	assert.Equal(t, "q,,p,,", SetSlot(",,p,,", 0, "q"))
	assert.Equal(t, "q,,,,", SetSlot("q,,p,,", 2, ""))
	assert.Equal(t, ",,p,,", SetSlot(",,p,,", 5, "x"))
	assert.Equal(t, ",,p,,", SetSlot(",,p,,", -1, "x"))
}

func TestAnyFilled(t *testing.T) {
	assert.False(t, AnyFilled("", "/files/"))
	assert.False(t, AnyFilled(",,,,", "/files/"))
	assert.True(t, AnyFilled(",,/files/12_tax2.jpg,,", "/files/"))
	assert.False(t, AnyFilled("http://elsewhere/x.jpg,,,,", "/files/"))
}
