package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/riftsim/internal/sim"
	"github.com/san-kum/riftsim/internal/storage"
)

type ExportData struct {
	Meta      storage.RunMetadata `json:"meta"`
	Times     []float64           `json:"times"`
	Offsets   []float64           `json:"offsets"`
	Edges     []float64           `json:"edges"`
	Elevation []float64           `json:"elevation"`
	Metrics   map[string]float64  `json:"metrics"`
}

// JSON writes a full run record to path, or to stdout when path is "-".
func JSON(path string, meta storage.RunMetadata, result *sim.Result) error {
	data := ExportData{
		Meta:      meta,
		Times:     result.Times,
		Offsets:   result.Offsets,
		Edges:     result.Edges,
		Elevation: result.Elevation,
		Metrics:   result.Metrics,
	}

	out := os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
