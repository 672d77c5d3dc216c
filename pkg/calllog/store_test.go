package calllog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Log(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	e := &Entry{Operation: "s1100"}
	s.Log(e)
	s.Log(nil)

	require.Equal(t, 1, s.Count())
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Same(t, e, s.Get(e.ID))
	assert.Nil(t, s.Get("missing"))
}

func TestMemoryStore_Evicts(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(3)
	for i := range 5 {
		s.Log(&Entry{ID: fmt.Sprint(i)})
	}

	entries := s.List(nil)
	require.Len(t, entries, 3)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "4", entries[2].ID)
}

func TestMemoryStore_List(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(0)
	s.Log(&Entry{Operation: "s1100"})
	s.Log(&Entry{Operation: "s1157", Fault: true, FaultCode: "soap:Client"})
	s.Log(&Entry{Operation: "s1158"})
	s.Log(&Entry{Operation: "s1158"})

	assert.Len(t, s.List(nil), 4)
	assert.Len(t, s.List(&Filter{Operation: "s1158"}), 2)
	assert.Len(t, s.List(&Filter{Operation: "s1158", Limit: 1}), 1)

	faults := s.List(&Filter{FaultOnly: true})
	require.Len(t, faults, 1)
	assert.Equal(t, "s1157", faults[0].Operation)

	s.Clear()
	assert.Zero(t, s.Count())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(50)
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				s.Log(&Entry{Operation: "s1158"})
				_ = s.List(&Filter{Operation: "s1158"})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Count())
}
