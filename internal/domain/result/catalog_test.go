package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubjects() []SubjectConfig {
	return []SubjectConfig{
		{ID: "English", MaxScore: 100},
		{ID: "Mathematics", MaxScore: 100},
		{ID: "Physics", MaxScore: 50},
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(testSubjects(), []Stream{
		{ID: "natural", Label: "Natural", Subjects: []string{"Physics", "English"}},
	}, DefaultTierTable())
	require.NoError(t, err)

	assert.Len(t, c.Subjects(), 3)
	s, ok := c.Subject("Physics")
	assert.True(t, ok)
	assert.Equal(t, 50.0, s.MaxScore)

	subs, err := c.SubjectsFor("natural")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Physics", subs[0].ID)
	assert.Equal(t, "English", subs[1].ID)

	all, err := c.SubjectsFor("")
	require.NoError(t, err)
	assert.Equal(t, []string{"English", "Mathematics", "Physics"}, ids(all))

	_, err = c.SubjectsFor("arts")
	assert.ErrorIs(t, err, ErrUnknownStream)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c, err := NewCatalog(testSubjects(), []Stream{
		{ID: "natural", Subjects: []string{"English"}},
	}, DefaultTierTable())
	require.NoError(t, err)

	subs := c.Subjects()
	subs[0].MaxScore = 1
	streams := c.Streams()
	streams[0].Subjects[0] = "Physics"
	tiers := c.Tiers()
	tiers[0].Min = 0

	s, _ := c.Subject("English")
	assert.Equal(t, 100.0, s.MaxScore)
	assert.Equal(t, 100.0, c.Subjects()[0].MaxScore)
	st, _ := c.Stream("natural")
	assert.Equal(t, []string{"English"}, st.Subjects)
	assert.Equal(t, 83.0, c.Tiers()[0].Min)
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		subjects []SubjectConfig
		streams  []Stream
	}{
		{"no subjects", nil, nil},
		{"empty id", []SubjectConfig{{ID: "", MaxScore: 100}}, nil},
		{"duplicate subject", []SubjectConfig{{ID: "A", MaxScore: 1}, {ID: "A", MaxScore: 2}}, nil},
		{"unknown stream member", testSubjects(), []Stream{{ID: "s", Subjects: []string{"Art"}}}},
		{"empty stream", testSubjects(), []Stream{{ID: "s"}}},
		{"duplicate stream", testSubjects(), []Stream{{ID: "s", Subjects: []string{"English"}}, {ID: "s", Subjects: []string{"English"}}}},
		{"repeated member", testSubjects(), []Stream{{ID: "s", Subjects: []string{"English", "English"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.subjects, tt.streams, DefaultTierTable())
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewCatalog_ZeroMaxScoreAccepted(t *testing.T) {
	_, err := NewCatalog([]SubjectConfig{{ID: "SAT", MaxScore: 0}}, nil, DefaultTierTable())
	assert.NoError(t, err)
}

func TestNewCatalog_InvalidTiers(t *testing.T) {
	_, err := NewCatalog(testSubjects(), nil, DefaultTierTable()[:2])
	assert.ErrorIs(t, err, ErrInvalidTierTable)
}

func ids(subjects []SubjectConfig) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.ID
	}
	return out
}
