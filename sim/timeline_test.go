package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineBuilder_Record_MergesSameOwner(t *testing.T) {
	// GIVEN P1 for three unit spans then P2 for one
	b := NewTimelineBuilder()
	b.Record("P1", 0, 1)
	b.Record("P1", 1, 2)
	b.Record("P1", 2, 3)
	b.Record("P2", 3, 4)

	// WHEN sealed
	got := b.Seal()

	// THEN consecutive P1 ticks form one interval
	want := []GanttInterval{
		{Owner: "P1", Start: 0, End: 3},
		{Owner: "P2", Start: 3, End: 4},
	}
	assert.Equal(t, want, got)
}

func TestTimelineBuilder_Record_ExtendsAndSeals(t *testing.T) {
	b := NewTimelineBuilder()
	b.Record("P1", 5, 7)
	b.Record("P1", 7, 9)
	b.Record(IdleOwner, 9, 12)
	b.Record("P1", 12, 13)

	got := b.Seal()
	assert.Equal(t, "[5,9)P1 [9,12)IDLE [12,13)P1", FormatTimeline(got))
	assert.True(t, got[1].Idle())
	assert.Equal(t, int64(3), got[1].Duration())
}

func TestTimelineBuilder_Seal_ReturnsCopy(t *testing.T) {
	b := NewTimelineBuilder()
	b.Record("P1", 0, 1)
	first := b.Seal()
	first[0].Owner = "X"
	assert.Equal(t, "P1", b.Seal()[0].Owner)
}

func TestTimelineBuilder_Empty(t *testing.T) {
	b := NewTimelineBuilder()
	assert.Empty(t, b.Seal())
	assert.Equal(t, "", FormatTimeline(nil))
}

func TestTimelineBuilder_InvariantViolations_Panic(t *testing.T) {
	t.Run("gap", func(t *testing.T) {
		b := NewTimelineBuilder()
		b.Record("P1", 0, 2)
		assert.Panics(t, func() { b.Record("P2", 3, 4) })
	})
	t.Run("overlap", func(t *testing.T) {
		b := NewTimelineBuilder()
		b.Record("P1", 0, 2)
		assert.Panics(t, func() { b.Record("P2", 1, 4) })
	})
	t.Run("empty span", func(t *testing.T) {
		b := NewTimelineBuilder()
		assert.Panics(t, func() { b.Record("P1", 2, 2) })
	})
	t.Run("after seal", func(t *testing.T) {
		b := NewTimelineBuilder()
		b.Record("P1", 0, 1)
		b.Seal()
		assert.Panics(t, func() { b.Record("P1", 1, 2) })
	})
}
