package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"Scheduled", StatusScheduled, true},
		{" in progress ", StatusInProgress, true},
		{"COMPLETED", StatusCompleted, true},
		{"done", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "B", "b"}, NormalizeTags([]string{" a", "B", "", "a ", "b", "  "}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestCloneDoesNotShareTags(t *testing.T) {
	st := ScheduledTask{Tags: []string{"x"}}
	c := st.Clone()
	c.Tags[0] = "y"
	assert.Equal(t, "x", st.Tags[0])
	assert.NotNil(t, ScheduledTask{}.Clone().Tags)
}

func TestImportReportMerge(t *testing.T) {
	r := &ImportReport{}
	r.AddError(5, "E5", "bad")
	other := &ImportReport{Added: 2}
	other.AddError(2, "E2", "worse")
	other.AddDuplicate(3, "E3", "dup")

	r.Merge(other)
	r.Merge(nil)

	assert.Equal(t, 2, r.Added)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 2, r.Errors)
	assert.Equal(t, 2, r.RowErrors[0].Line)
	assert.Equal(t, "row 2 (E2): worse", r.RowErrors[0].String())
	assert.Equal(t, "2 employees imported. 1 skipped (duplicates). 2 rows had errors.", r.Summary("employees"))
}
