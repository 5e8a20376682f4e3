package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pedrodamas1/chemeq/internal/equilib"
	"github.com/pedrodamas1/chemeq/internal/experiment"
)

// Store persists solve and titration runs under a base directory, one
// subdirectory per run with metadata.json plus a CSV payload.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"` // "solve" or "titration"
	System     string    `json:"system"`
	Solver     string    `json:"solver"`
	Timestamp  time.Time `json:"timestamp"`
	Residual   float64   `json:"residual,omitempty"`
	Iterations int       `json:"iterations,omitempty"`
	PH         float64   `json:"ph,omitempty"`
	Points     int       `json:"points,omitempty"`
}

// SaveSolve writes a converged solve as metadata.json plus
// concentrations.csv (species, charge, concentration).
func (s *Store) SaveSolve(system, solverName string, res *equilib.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Kind:       "solve",
		System:     system,
		Solver:     solverName,
		Timestamp:  time.Now(),
		Residual:   res.Residual,
		Iterations: res.Iterations,
	}
	if ph, ok := res.PH(); ok {
		meta.PH = ph
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	rows := [][]string{{"species", "charge", "concentration"}}
	for i, sp := range res.Species {
		rows = append(rows, []string{
			sp.Name,
			strconv.Itoa(sp.Charge),
			strconv.FormatFloat(res.Concentrations[i], 'e', 10, 64),
		})
	}
	if err := s.writeCSV(filepath.Join(runDir, "concentrations.csv"), rows); err != nil {
		return "", err
	}
	return runID, nil
}

// SaveTitration writes a sweep as metadata.json plus curve.csv
// (target, pH).
func (s *Store) SaveTitration(system, solverName string, res *experiment.TitrationResult) (string, error) {
	runID := fmt.Sprintf("%s_titration_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "titration",
		System:    system,
		Solver:    solverName,
		Timestamp: time.Now(),
		Points:    len(res.Targets),
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	rows := [][]string{{res.Token, "ph"}}
	for i := range res.Targets {
		rows = append(rows, []string{
			strconv.FormatFloat(res.Targets[i], 'f', 6, 64),
			strconv.FormatFloat(res.PH[i], 'f', 6, 64),
		})
	}
	if err := s.writeCSV(filepath.Join(runDir, "curve.csv"), rows); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns metadata for every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func (s *Store) writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	return w.WriteAll(rows)
}
