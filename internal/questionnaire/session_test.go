package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulprint/internal/scoring"
)

func sections() []scoring.Section {
	return []scoring.Section{
		{ID: "one", Questions: []string{"q1", "q2"}},
		{ID: "two", Questions: []string{"q3"}},
		{ID: "three", Questions: []string{"q4"}},
	}
}

func TestSession_WalksForwardAndBack(t *testing.T) {
	s, err := NewSession("r1", sections())
	require.NoError(t, err)

	assert.Equal(t, 0, s.CurrentIndex())
	assert.ErrorIs(t, s.Back(), ErrNoPreviousSection)

	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, "three", s.CurrentSection().ID)
	assert.ErrorIs(t, s.Next(), ErrNoNextSection)

	require.NoError(t, s.Back())
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestSession_SubmitOnlyFromLastSection(t *testing.T) {
	s, err := NewSession("r1", sections())
	require.NoError(t, err)
	require.NoError(t, s.Record(scoring.RawResponse{"q1": scoring.Slider(10)}))

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrNotAtLastSection)

	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	snapshot, err := s.Submit()
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, s.Status())
	assert.Equal(t, scoring.RawResponse{"q1": scoring.Slider(10)}, snapshot)
}

func TestSession_SubmittedIsReadOnly(t *testing.T) {
	s, err := Restore("r1", sections(), 2, StatusInProgress, nil)
	require.NoError(t, err)
	snapshot, err := s.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Record(scoring.RawResponse{"q1": scoring.Slider(1)}), ErrSessionSubmitted)
	assert.ErrorIs(t, s.Next(), ErrSessionSubmitted)
	assert.ErrorIs(t, s.Back(), ErrSessionSubmitted)
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSessionSubmitted)

	snapshot["q1"] = scoring.Slider(99)
	assert.NotContains(t, s.Answers(), "q1", "snapshot is a copy")
}

func TestSession_ProgressCountsAnsweredQuestions(t *testing.T) {
	s, err := NewSession("r1", sections())
	require.NoError(t, err)
	require.NoError(t, s.Record(scoring.RawResponse{"q1": scoring.Slider(10), "q4": scoring.Choice("x"), "other": scoring.Slider(3)}))

	p := s.Progress()

	require.Len(t, p, 3)
	assert.Equal(t, SectionProgress{SectionID: "one", Answered: 1, Expected: 2}, p[0])
	assert.Equal(t, 0, p[1].Answered)
	assert.Equal(t, 1, p[2].Answered)
}

func TestRestore_ClampsIndex(t *testing.T) {
	s, err := Restore("r1", sections(), 9, StatusInProgress, scoring.RawResponse{"q1": scoring.Slider(5)})
	require.NoError(t, err)
	assert.Equal(t, 2, s.CurrentIndex())

	s, err = Restore("r1", sections(), -3, StatusInProgress, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestNewSession_RequiresSections(t *testing.T) {
	_, err := NewSession("r1", nil)
	assert.ErrorIs(t, err, ErrNoSections)
}
