// internal/domain/result/catalog.go
package result

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCatalog = errors.New("invalid subject catalog")
	ErrUnknownStream  = errors.New("unknown stream")
)

// SubjectConfig is one tracked subject and the maximum score its plain scores are measured against.
// A subject with MaxScore <= 0 can still resolve fraction scores; plain scores are always invalid.
type SubjectConfig struct {
	ID       string
	MaxScore float64
}

// Stream is a named, ordered subset of subjects shown together.
type Stream struct {
	ID       string
	Label    string
	Subjects []string
}

// Catalog is the immutable subject table built once at startup.
// Accessors return copies so callers cannot mutate it.
type Catalog struct {
	subjects []SubjectConfig
	byID     map[string]SubjectConfig
	streams  []Stream
	tiers    TierTable
}

// NewCatalog validates and freezes the subject table, streams and tier thresholds.
func NewCatalog(subjects []SubjectConfig, streams []Stream, tiers TierTable) (*Catalog, error) {
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: no subjects configured", ErrInvalidCatalog)
	}
	if err := tiers.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		subjects: make([]SubjectConfig, 0, len(subjects)),
		byID:     make(map[string]SubjectConfig, len(subjects)),
		tiers:    append(TierTable(nil), tiers...),
	}
	for _, s := range subjects {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: subject with empty id", ErrInvalidCatalog)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate subject %q", ErrInvalidCatalog, s.ID)
		}
		c.byID[s.ID] = s
		c.subjects = append(c.subjects, s)
	}

	seenStreams := make(map[string]bool, len(streams))
	for _, st := range streams {
		if st.ID == "" {
			return nil, fmt.Errorf("%w: stream with empty id", ErrInvalidCatalog)
		}
		if seenStreams[st.ID] {
			return nil, fmt.Errorf("%w: duplicate stream %q", ErrInvalidCatalog, st.ID)
		}
		seenStreams[st.ID] = true
		if len(st.Subjects) == 0 {
			return nil, fmt.Errorf("%w: stream %q has no subjects", ErrInvalidCatalog, st.ID)
		}
		members := make(map[string]bool, len(st.Subjects))
		for _, id := range st.Subjects {
			if _, ok := c.byID[id]; !ok {
				return nil, fmt.Errorf("%w: stream %q references unknown subject %q", ErrInvalidCatalog, st.ID, id)
			}
			if members[id] {
				return nil, fmt.Errorf("%w: stream %q lists subject %q twice", ErrInvalidCatalog, st.ID, id)
			}
			members[id] = true
		}
		c.streams = append(c.streams, Stream{
			ID:       st.ID,
			Label:    st.Label,
			Subjects: append([]string(nil), st.Subjects...),
		})
	}
	return c, nil
}

// Subjects returns every subject in configured order.
func (c *Catalog) Subjects() []SubjectConfig {
	return append([]SubjectConfig(nil), c.subjects...)
}

func (c *Catalog) Subject(id string) (SubjectConfig, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func (c *Catalog) Streams() []Stream {
	out := make([]Stream, len(c.streams))
	for i, st := range c.streams {
		st.Subjects = append([]string(nil), st.Subjects...)
		out[i] = st
	}
	return out
}

func (c *Catalog) Stream(id string) (Stream, bool) {
	for _, st := range c.streams {
		if st.ID == id {
			st.Subjects = append([]string(nil), st.Subjects...)
			return st, true
		}
	}
	return Stream{}, false
}

// SubjectsFor returns the subjects of a stream in stream order, or all subjects when
// streamID is empty.
func (c *Catalog) SubjectsFor(streamID string) ([]SubjectConfig, error) {
	if streamID == "" {
		return c.Subjects(), nil
	}
	st, ok := c.Stream(streamID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStream, streamID)
	}
	out := make([]SubjectConfig, 0, len(st.Subjects))
	for _, id := range st.Subjects {
		out = append(out, c.byID[id])
	}
	return out, nil
}

func (c *Catalog) Tiers() TierTable {
	return append(TierTable(nil), c.tiers...)
}
