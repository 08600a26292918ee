package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/rift"
	"github.com/san-kum/riftsim/internal/sim"
)

// Store persists runs under a base directory, one subdirectory per run
// holding metadata.json and profile.csv.
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
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	Dt              float64            `json:"dt"`
	Duration        float64            `json:"duration"`
	ExtensionRate   float64            `json:"extension_rate"`
	FaultDip        float64            `json:"fault_dip"`
	FaultLocation   float64            `json:"fault_location"`
	DetachmentDepth float64            `json:"detachment_depth"`
	Nodes           int                `json:"nodes"`
	Spacing         float64            `json:"spacing"`
	Shifts          int                `json:"shifts"`
	Metrics         map[string]float64 `json:"metrics"`
}

// Save writes run metadata plus the final per-node profile (x,
// elevation, subsidence rate, and thickness fields when present) and
// returns the generated run id.
func (s *Store) Save(e *rift.Extender, cfg sim.Config, result *sim.Result) (string, error) {
	// nanosecond resolution so back-to-back runs get distinct directories
	runID := fmt.Sprintf("rift_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	p := e.Params()
	meta := RunMetadata{
		ID:              runID,
		Timestamp:       time.Now(),
		Dt:              cfg.Dt,
		Duration:        cfg.Duration,
		ExtensionRate:   p.ExtensionRate,
		FaultDip:        p.FaultDip,
		FaultLocation:   p.FaultLocation,
		DetachmentDepth: p.DetachmentDepth,
		Nodes:           e.Grid().Len(),
		Spacing:         e.Grid().Spacing(),
		Shifts:          e.ShiftCount(),
		Metrics:         result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	g := e.Grid()
	header := []string{"x", "y", grid.FieldElevation, grid.FieldSubsidenceRate}
	extra := []string{}
	for _, name := range []string{grid.FieldCrustThickness, grid.FieldCumSubsidence} {
		if g.HasField(name) {
			extra = append(extra, name)
		}
	}
	header = append(header, extra...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	elev, _ := g.Field(grid.FieldElevation)
	rate, _ := g.Field(grid.FieldSubsidenceRate)
	for i := 0; i < g.Len(); i++ {
		row := []string{
			strconv.FormatFloat(g.X(i), 'f', 3, 64),
			strconv.FormatFloat(g.Y(i), 'f', 3, 64),
			strconv.FormatFloat(elev[i], 'f', 6, 64),
			strconv.FormatFloat(rate[i], 'g', -1, 64),
		}
		for _, name := range extra {
			f, _ := g.Field(name)
			row = append(row, strconv.FormatFloat(f[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads the saved per-node x and elevation columns.
func (s *Store) LoadProfile(runID string) (x, elev []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	elevCol := -1
	for j, name := range records[0] {
		if name == grid.FieldElevation {
			elevCol = j
		}
	}
	if elevCol < 0 {
		return nil, nil, fmt.Errorf("storage: run %s has no elevation column", runID)
	}

	for _, record := range records[1:] {
		if len(record) <= elevCol {
			continue
		}
		xv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		ev, err := strconv.ParseFloat(record[elevCol], 64)
		if err != nil {
			continue
		}
		x = append(x, xv)
		elev = append(elev, ev)
	}
	return x, elev, nil
}
