package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_EvictsOldestBeyondCapacity(t *testing.T) {
	r := NewWithCapacity(3)
	r.Add("one")
	r.Add("two")
	r.Add("three")
	r.Add("four")

	assert.Equal(t, []string{"two", "three", "four"}, r.Commands())
	assert.Equal(t, 3, r.Len())
}

func TestRing_SkipsConsecutiveDuplicates(t *testing.T) {
	r := New()
	r.Add("ls")
	r.Add("ls")
	r.Add("pwd")
	r.Add("ls")

	assert.Equal(t, []string{"ls", "pwd", "ls"}, r.Commands())
}

func TestRing_DefaultCapacity(t *testing.T) {
	r := New()
	for i := 0; i < Capacity+5; i++ {
		r.Add(fmt.Sprintf("cmd %d", i))
	}

	assert.Equal(t, Capacity, r.Len())
	assert.Equal(t, "cmd 5", r.Commands()[0])
}

func TestRing_Last(t *testing.T) {
	r := New()
	r.Add("a")
	r.Add("b")
	r.Add("c")

	assert.Equal(t, []string{"b", "c"}, r.Last(2))
	assert.Equal(t, []string{"a", "b", "c"}, r.Last(10))
}

func TestRing_CommandsReturnsCopy(t *testing.T) {
	r := New()
	r.Add("a")

	got := r.Commands()
	got[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Commands())
}
