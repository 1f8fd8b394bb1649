package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"difgo/internal/diff"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Record is one saved comparison. It keeps the two source texts and the
// stats as opaque data, the script is re-derived by the engine when needed.
type Record struct {
	ID        string     `json:"id"`
	Left      string     `json:"left"`
	Right     string     `json:"right"`
	Timestamp time.Time  `json:"timestamp"`
	Stats     diff.Stats `json:"stats"`
}

// History is a bounded log of records backed by a json file,
// most recent first.
type History struct {
	File string
	Max  int
}

func (this *History) Load() ([]Record, error) {
	data, err := os.ReadFile(this.File)
	if os.IsNotExist(err) { return nil, nil }
	if err != nil { return nil, fmt.Errorf("error reading history file: %w", err) }

	var records []Record
	err = json.Unmarshal(data, &records)
	if err != nil { return nil, fmt.Errorf("error parsing history file: %w", err) }
	return records, nil
}

func (this *History) Add(left string, right string, stats diff.Stats) (Record, error) {
	record := Record{
		ID:        uuid.NewString(),
		Left:      left,
		Right:     right,
		Timestamp: time.Now(),
		Stats:     stats,
	}

	records, err := this.Load()
	if err != nil { return Record{}, err }

	records = append([]Record{record}, records...)
	if this.Max > 0 && len(records) > this.Max { records = records[:this.Max] }

	err = this.save(records)
	if err != nil { return Record{}, err }
	return record, nil
}

func (this *History) Clear() error {
	err := os.Remove(this.File)
	if err != nil && !os.IsNotExist(err) { return fmt.Errorf("error clearing history: %w", err) }
	return nil
}

func (this *History) save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil { return fmt.Errorf("error encoding history: %w", err) }

	dir := filepath.Dir(this.File)
	if dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil { return fmt.Errorf("error creating history dir: %w", err) }
	}

	err = os.WriteFile(this.File, data, 0644)
	if err != nil { return fmt.Errorf("error writing history file: %w", err) }
	return nil
}
