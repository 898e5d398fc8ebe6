package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

type DealRecord struct {
	ID           int
	Variant      string
	CardsPerSuit int
	Seed         uint64
	Soloist      int
	Value        int
	Move         string
}

type SearchRecord struct {
	Deal int // DealRecord.ID
	SearchMetric
}

type Writer struct {
	dir string
}

// NewWriter creates a run directory under baseDir named by a fresh UUID.
func NewWriter(baseDir string) (*Writer, error) {
	dir := filepath.Join(baseDir, uuid.NewString())
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		dir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteDeals(records []DealRecord) error {
	header := []string{"id", "variant", "cards_per_suit", "seed", "soloist", "value", "move"}
	return w.write("deals.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.ID),
			r.Variant,
			strconv.Itoa(r.CardsPerSuit),
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.Soloist),
			strconv.Itoa(r.Value),
			r.Move,
		}
	})
}

func (w *Writer) WriteSearches(records []SearchRecord) error {
	header := []string{"deal", "driver", "duration", "nodes", "cutoffs", "table_hits", "probes"}
	return w.write("searches.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.Deal),
			r.Driver,
			r.Duration.String(),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Cutoffs),
			strconv.Itoa(r.TableHits),
			strconv.Itoa(r.Probes),
		}
	})
}

func (w *Writer) write(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
