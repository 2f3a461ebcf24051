package gui

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// BestRun is the personal best kept alongside the window build.
type BestRun struct {
	Score int       `yaml:"score"`
	Level int       `yaml:"level"`
	Runs  int       `yaml:"runs"`
	When  time.Time `yaml:"when"`
}

// RecordBook persists the best run through gdata.
// A nil manager keeps records in memory only.
type RecordBook struct {
	data *gdata.Manager
	best BestRun
}

// OpenRecordBook opens the app data store for appName.
// When the platform has no data directory the book still works in memory
// and the open error is returned next to it.
func OpenRecordBook(appName string) (*RecordBook, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewRecordBook(nil), fmt.Errorf("gui: open records: %w", err)
	}
	rb := NewRecordBook(m)
	return rb, rb.Load()
}

// NewRecordBook wraps an already opened manager, which may be nil.
func NewRecordBook(m *gdata.Manager) *RecordBook {
	return &RecordBook{data: m}
}

// Load reads the stored best run. A missing record is not an error.
func (rb *RecordBook) Load() error {
	if rb.data == nil || !rb.data.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	raw, err := rb.data.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("gui: load records: %w", err)
	}
	var best BestRun
	if err := yaml.Unmarshal(raw, &best); err != nil {
		return fmt.Errorf("gui: decode records: %w", err)
	}
	rb.best = best
	return nil
}

// Record counts a finished run and reports whether it is a new best.
// Ties on score go to the deeper level.
func (rb *RecordBook) Record(score, level int, when time.Time) (bool, error) {
	rb.best.Runs++
	improved := score > rb.best.Score || (score == rb.best.Score && level > rb.best.Level)
	if improved {
		rb.best.Score = score
		rb.best.Level = level
		rb.best.When = when
	}
	return improved, rb.save()
}

// Best returns the best run so far.
func (rb *RecordBook) Best() BestRun {
	return rb.best
}

func (rb *RecordBook) save() error {
	if rb.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(rb.best)
	if err != nil {
		return fmt.Errorf("gui: encode records: %w", err)
	}
	if err := rb.data.SaveObjectProp(recordsObject, recordsProperty, raw); err != nil {
		return fmt.Errorf("gui: save records: %w", err)
	}
	return nil
}
