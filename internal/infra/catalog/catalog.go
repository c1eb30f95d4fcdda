// Package catalog loads the subject table, streams, tier thresholds and source
// bindings from YAML, or provides the built-in exam catalog.
package catalog

import (
	"fmt"
	"strings"

	"exam_results_bot/internal/domain/result"
	"exam_results_bot/internal/infra/sources"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Definition is a validated catalog plus the source binding of every subject.
type Definition struct {
	Catalog  *result.Catalog
	Sources  map[string]sources.Spec // keyed by subject id
	Warnings []string
}

type subjectEntry struct {
	ID        string       `koanf:"id"`
	MaxScore  float64      `koanf:"max_score"`
	SheetName string       `koanf:"sheet_name"`
	Source    sources.Spec `koanf:"source"`
}

type streamEntry struct {
	ID       string   `koanf:"id"`
	Label    string   `koanf:"label"`
	Subjects []string `koanf:"subjects"`
}

type tierEntry struct {
	Tier string  `koanf:"tier"`
	Min  float64 `koanf:"min"`
}

type document struct {
	Subjects []subjectEntry `koanf:"subjects"`
	Streams  []streamEntry  `koanf:"streams"`
	Tiers    []tierEntry    `koanf:"tiers"`
}

// Load reads a YAML catalog file.
func Load(path string) (*Definition, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	return build(doc)
}

// Default returns the catalog of the model exam deployment: nine subjects scored out
// of 100, two streams, and csv files named after each subject's sheet.
func Default() (*Definition, error) {
	names := []string{"English", "Mathematics", "Biology", "Physics", "Chemistry", "History", "Economics", "Geography", "SAT"}
	doc := document{}
	for _, n := range names {
		doc.Subjects = append(doc.Subjects, subjectEntry{
			ID:        n,
			MaxScore:  100,
			SheetName: n + " Model Exam I",
		})
	}
	doc.Streams = []streamEntry{
		{ID: "natural", Label: "🌿 ናቸራል", Subjects: []string{"English", "Mathematics", "Biology", "Physics", "Chemistry", "SAT"}},
		{ID: "social", Label: "🌍 ሶሻል", Subjects: []string{"English", "Mathematics", "History", "Economics", "Geography", "SAT"}},
	}
	return build(doc)
}

func build(doc document) (*Definition, error) {
	def := &Definition{Sources: make(map[string]sources.Spec, len(doc.Subjects))}

	subjects := make([]result.SubjectConfig, 0, len(doc.Subjects))
	for _, s := range doc.Subjects {
		id := strings.TrimSpace(s.ID)
		subjects = append(subjects, result.SubjectConfig{ID: id, MaxScore: s.MaxScore})
		if !(s.MaxScore > 0) {
			def.Warnings = append(def.Warnings, fmt.Sprintf("subject %s has max_score %v; plain scores will always be invalid", id, s.MaxScore))
		}

		spec := s.Source
		if spec.Kind == "" {
			spec.Kind = sources.KindCSV
		}
		if spec.Kind == sources.KindCSV && spec.Path == "" {
			name := s.SheetName
			if name == "" {
				name = id
			}
			spec.Path = name + ".csv"
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: subject %s: %v", result.ErrInvalidCatalog, id, err)
		}
		def.Sources[id] = spec
	}

	streams := make([]result.Stream, 0, len(doc.Streams))
	for _, st := range doc.Streams {
		streams = append(streams, result.Stream{ID: st.ID, Label: st.Label, Subjects: st.Subjects})
	}

	tiers := result.DefaultTierTable()
	if len(doc.Tiers) > 0 {
		tiers = make(result.TierTable, 0, len(doc.Tiers))
		for _, t := range doc.Tiers {
			tiers = append(tiers, result.TierBound{
				Tier: result.Tier(strings.ToUpper(strings.TrimSpace(t.Tier))),
				Min:  t.Min,
			})
		}
	}

	cat, err := result.NewCatalog(subjects, streams, tiers)
	if err != nil {
		return nil, err
	}
	def.Catalog = cat
	return def, nil
}
