package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"dilemma/rank"
)

// Writer stores one experiment's artifacts as CSV files in a timestamped
// subdirectory.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create artifact directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteTrialWeights stores one row per trial with every strategy's
// normalized weight for that trial.
func (w *Writer) WriteTrialWeights(names []string, trialWeights [][]float64) error {
	path := filepath.Join(w.baseDir, "trial_weights.csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create trial weights file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := append([]string{"trial"}, names...)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write trial weights header")
	}

	for t, weights := range trialWeights {
		row := make([]string, 0, len(weights)+1)
		row = append(row, strconv.Itoa(t+1))
		for _, weight := range weights {
			row = append(row, strconv.FormatFloat(weight, 'f', 6, 64))
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write trial weights row")
		}
	}

	return writer.Error()
}

// WriteRanking stores the final descending ranking with summed weights.
func (w *Writer) WriteRanking(results []rank.Result) error {
	path := filepath.Join(w.baseDir, "ranking.csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create ranking file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"rank", "strategy", "weight"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write ranking header")
	}

	for i, result := range results {
		row := []string{
			strconv.Itoa(i + 1),
			result.Strategy.String(),
			strconv.FormatFloat(result.Weight, 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write ranking row")
		}
	}

	return writer.Error()
}
