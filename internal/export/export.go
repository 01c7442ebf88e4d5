// Package export writes rollout trajectories to JSON for external tooling.
package export

import (
	"encoding/json"
	"os"

	"github.com/skodra/quatdmp/internal/dmp"
)

type TrajectoryData struct {
	NumBasis      int          `json:"n_bf"`
	Dt            float64      `json:"dt"`
	Tau           float64      `json:"tau"`
	Steps         int          `json:"steps"`
	Times         []float64    `json:"times"`
	Orientations  [][4]float64 `json:"orientations"` // (x, y, z, w)
	Velocities    [][3]float64 `json:"velocities"`
	Accelerations [][3]float64 `json:"accelerations"`
}

func build(cfg dmp.Config, tau float64, tr *dmp.Trajectory) TrajectoryData {
	data := TrajectoryData{
		NumBasis:      cfg.NumBasis,
		Dt:            cfg.Dt,
		Tau:           tau,
		Steps:         tr.Len(),
		Times:         cfg.SampleTimes(tau),
		Orientations:  make([][4]float64, tr.Len()),
		Velocities:    make([][3]float64, tr.Len()),
		Accelerations: make([][3]float64, tr.Len()),
	}
	for i, q := range tr.Orientations {
		data.Orientations[i] = [4]float64{q.X, q.Y, q.Z, q.W}
	}
	for i, v := range tr.Velocities {
		data.Velocities[i] = v
	}
	for i, a := range tr.Accelerations {
		data.Accelerations[i] = a
	}
	return data
}

// JSON writes the trajectory with its run parameters to path.
func JSON(path string, cfg dmp.Config, tau float64, tr *dmp.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(build(cfg, tau, tr))
}
