package naming

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func number(base, start, padding string) NumberingInput {
	return NumberingInput{BaseName: base, Start: start, Padding: padding}
}

func TestFormatSuffix(t *testing.T) {
	tests := []struct {
		name           string
		index, padding int
		want           string
	}{
		{"padded", 1, 3, "001"},
		{"exact width", 123, 3, "123"},
		{"overflow kept whole", 999, 2, "999"},
		{"zero padding", 7, 0, "7"},
		{"zero index", 0, 2, "00"},
		{"wide", 42, 6, "000042"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSuffix(tt.index, tt.padding))
		})
	}
}

func TestParseNumbering(t *testing.T) {
	tests := []struct {
		name        string
		start, pad  string
		wantStart   int
		wantPadding int
		wantErr     error
	}{
		{"defaults", "1", "3", 1, 3, nil},
		{"whitespace trimmed", " 10 ", "\t2", 10, 2, nil},
		{"zero", "0", "0", 0, 0, nil},
		{"start not a number", "one", "3", 0, 0, ErrNotANumber},
		{"padding not a number", "1", "3.5", 0, 0, ErrNotANumber},
		{"empty start", "", "3", 0, 0, ErrNotANumber},
		{"negative start", "-1", "3", 0, 0, ErrOutOfRange},
		{"negative padding", "1", "-2", 0, 0, ErrOutOfRange},
		{"padding too wide", "1", "33", 0, 0, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseNumbering(number("Prop", tt.start, tt.pad))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, req.Start)
			assert.Equal(t, tt.wantPadding, req.Padding)
			assert.Equal(t, "Prop", req.BaseName)
		})
	}
}

func TestRenameSequential_SelectionOrder(t *testing.T) {
	h := newFakeHost().selectNames("pSphere3", "pCube1", "pCylinder2", "locator9")
	r := NewRenamer(h, Options{})

	outcomes, err := r.RenameSequential(context.Background(), number("Prop", "1", "3"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Prop_001", "Prop_002", "Prop_003", "Prop_004"}, h.selectedNames())
	assert.Equal(t, Summary{Renamed: 4}, Summarize(outcomes))
	for i, o := range outcomes {
		assert.Equal(t, h.selected[i], o.Item.ID)
	}
	assert.Empty(t, h.warnings)
}

func TestRenameSequential_CollisionSkipsAndIndexAdvances(t *testing.T) {
	h := newFakeHost().selectNames("a", "b", "c")
	h.add("Obj_01", false)
	r := NewRenamer(h, Options{})

	outcomes, err := r.RenameSequential(context.Background(), number("Obj", "1", "2"))
	require.NoError(t, err)

	require.Len(t, outcomes, 3)
	assert.Equal(t, StatusSkipped, outcomes[0].Status)
	assert.Equal(t, "Obj_01", outcomes[0].NewName)
	assert.ErrorIs(t, outcomes[0].Err, ErrNameCollision)
	assert.Equal(t, "Obj_02", outcomes[1].NewName)
	assert.Equal(t, "Obj_03", outcomes[2].NewName)
	assert.Equal(t, []string{"a", "Obj_02", "Obj_03"}, h.selectedNames())
	assert.Equal(t, []string{"Object name 'Obj_01' already exists!"}, h.warnings)
}

func TestRenameSequential_ItemAlreadyHoldingCandidateIsSkipped(t *testing.T) {
	h := newFakeHost().selectNames("Prop_001", "x")
	r := NewRenamer(h, Options{})

	outcomes, err := r.RenameSequential(context.Background(), number("Prop", "1", "3"))
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, outcomes[0].Status)
	assert.Equal(t, []string{"Prop_001", "Prop_002"}, h.selectedNames())
}

func TestRenameSequential_PaddingOverflowPreserved(t *testing.T) {
	h := newFakeHost().selectNames("a", "b")
	r := NewRenamer(h, Options{})

	_, err := r.RenameSequential(context.Background(), number("Frame", "999", "2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Frame_999", "Frame_1000"}, h.selectedNames())
}

func TestRenameSequential_BaseNameSanitized(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"spaces stripped", "my prop", "myprop_1"},
		{"punctuation stripped", "wall-L.01", "wallL01_1"},
		{"leading digit prefixed", "2ndFloor", "_2ndFloor_1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost().selectNames("x")
			r := NewRenamer(h, Options{})

			_, err := r.RenameSequential(context.Background(), number(tt.base, "1", "0"))
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, h.selectedNames())
		})
	}
}

func TestRenameSequential_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		in       NumberingInput
		wantErr  error
		wantWarn string
	}{
		{"no selection", nil, number("Prop", "1", "3"), ErrNoSelection, "Please select the object"},
		{"empty base name", []string{"a"}, number("", "1", "3"), ErrEmptyBaseName, "Please enter a new name"},
		{"numeric base name", []string{"a"}, number("123", "1", "3"), ErrInvalidBaseName,
			"The base name cannot be only numbers. Please use letters."},
		{"start not a number", []string{"a"}, number("Prop", "x", "3"), ErrNotANumber,
			"Start number and padding must be numbers!"},
		{"padding not a number", []string{"a"}, number("Prop", "1", ""), ErrNotANumber,
			"Start number and padding must be numbers!"},
		{"negative start", []string{"a"}, number("Prop", "-4", "3"), ErrOutOfRange,
			"Start number and padding are out of range!"},
		{"start overflows across the selection", []string{"a", "b"}, number("Obj", strconv.Itoa(math.MaxInt), "3"), ErrOutOfRange,
			"Start number and padding are out of range!"},
		{"nothing left after sanitizing", []string{"a"}, number("!!!", "1", "3"), ErrInvalidBaseName,
			"The base name has no usable characters. Please use letters, digits or underscores."},
		{"empty base checked before numbers", []string{"a"}, number("", "x", "y"), ErrEmptyBaseName,
			"Please enter a new name"},
		{"numeric base checked before numbers", []string{"a"}, number("42", "x", "y"), ErrInvalidBaseName,
			"The base name cannot be only numbers. Please use letters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost().selectNames(tt.selected...)
			r := NewRenamer(h, Options{})

			outcomes, err := r.RenameSequential(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, outcomes)
			assert.Zero(t, h.renames, "no item may change on precondition failure")
			assert.Equal(t, []string{tt.wantWarn}, h.warnings)
		})
	}
}

func TestRenameSequential_NumericPrefixPolicy(t *testing.T) {
	h := newFakeHost().selectNames("a", "b")
	r := NewRenamer(h, Options{NumericPolicy: NumericPrefix})

	_, err := r.RenameSequential(context.Background(), number("123", "1", "2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"_123_01", "_123_02"}, h.selectedNames())
}

func TestRenameSequential_HostRejectionContinues(t *testing.T) {
	h := newFakeHost().selectNames("a", "b", "c")
	h.rejectName = func(n string) bool { return n == "Prop_2" }
	r := NewRenamer(h, Options{})

	outcomes, err := r.RenameSequential(context.Background(), number("Prop", "1", "0"))
	require.NoError(t, err)
	assert.Equal(t, Summary{Renamed: 2, Skipped: 1}, Summarize(outcomes))
	assert.ErrorIs(t, outcomes[1].Err, ErrRenameRejected)
	assert.Equal(t, []string{"Prop_1", "b", "Prop_3"}, h.selectedNames())
}

func TestRenameSequential_ExistsErrorSkipsItem(t *testing.T) {
	h := newFakeHost().selectNames("a", "b")
	h.existsErr = errors.New("namespace offline")
	r := NewRenamer(h, Options{})

	outcomes, err := r.RenameSequential(context.Background(), number("Prop", "1", "3"))
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 2}, Summarize(outcomes))
	assert.Zero(t, h.renames)
	assert.Len(t, h.warnings, 2)
}

func TestRenameSequential_Deterministic(t *testing.T) {
	run := func() []string {
		h := newFakeHost().selectNames("c", "a", "b")
		h.add("Obj_002", false)
		_, err := NewRenamer(h, Options{}).RenameSequential(context.Background(), number("Obj", "1", "3"))
		require.NoError(t, err)
		return h.selectedNames()
	}
	first := run()
	assert.Equal(t, []string{"Obj_001", "a", "Obj_003"}, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestRenameSequentialRequest(t *testing.T) {
	h := newFakeHost().selectNames("a", "b")
	r := NewRenamer(h, Options{})

	_, err := r.RenameSequentialRequest(context.Background(), NumberingRequest{BaseName: "Leg", Start: 0, Padding: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Leg_00", "Leg_01"}, h.selectedNames())

	_, err = r.RenameSequentialRequest(context.Background(), NumberingRequest{BaseName: "Leg", Start: 1, Padding: -1})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Outcome{
		{Status: StatusRenamed}, {Status: StatusRenamed},
		{Status: StatusSkipped}, {Status: StatusUnchanged},
	})
	assert.Equal(t, Summary{Renamed: 2, Skipped: 1, Unchanged: 1}, s)
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, "skipped", StatusSkipped.String())
}
