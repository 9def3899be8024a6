// Package report renders commute comparisons for the console and for export.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/commuteco2/core/model"
)

// Formats understood by Write.
const (
	FormatSummary = "summary"
	FormatRaw     = "raw"
	FormatJSON    = "json"
	FormatCSV     = "csv"
)

// ErrUnknownFormat is returned by Write for an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Report is one commute comparison.
type Report struct {
	RunID       string
	Origin      string
	Destination string
	Results     []model.Result
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case FormatSummary:
		return WriteSummary(w, r.Results)
	case FormatRaw:
		return WriteRaw(w, r.Results)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatCSV:
		return WriteCSV(w, r.Results)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteSummary writes one sentence per mode with whole minutes and kilograms.
func WriteSummary(w io.Writer, results []model.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s takes %d min and produces %d kg of CO2. That is a %.2f%% reduction compared to taking the car.\n",
			r.Mode, r.Minutes(), r.Kilograms(), r.SavingsPct); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw writes one sentence per mode with the emission in grams. It suits
// providers without travel time.
func WriteRaw(w io.Writer, results []model.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s produces %.2f g of CO2. That is a %.2f%% reduction compared to taking the car.\n",
			r.Mode, r.EmissionGrams, r.SavingsPct); err != nil {
			return err
		}
	}
	return nil
}

type jsonResult struct {
	Mode            string  `json:"mode"`
	DistanceMeters  float64 `json:"distance_m"`
	DurationSeconds int64   `json:"duration_s"`
	EmissionGrams   float64 `json:"emission_g"`
	SavingsPct      float64 `json:"savings_pct"`
}

type jsonReport struct {
	RunID       string       `json:"run_id,omitempty"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	Results     []jsonResult `json:"results"`
}

// WriteJSON writes the report as a single JSON document.
func WriteJSON(w io.Writer, r Report) error {
	out := jsonReport{
		RunID:       r.RunID,
		Origin:      r.Origin,
		Destination: r.Destination,
		Results:     make([]jsonResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, jsonResult{
			Mode:            res.Mode.String(),
			DistanceMeters:  res.DistanceMeters,
			DurationSeconds: int64(res.Duration.Seconds()),
			EmissionGrams:   res.EmissionGrams,
			SavingsPct:      res.SavingsPct,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteCSV writes the results with a header row.
func WriteCSV(w io.Writer, results []model.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mode", "distance_m", "duration_s", "emission_g", "savings_pct"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.Mode.String(),
			strconv.FormatFloat(r.DistanceMeters, 'f', -1, 64),
			strconv.FormatInt(int64(r.Duration.Seconds()), 10),
			strconv.FormatFloat(r.EmissionGrams, 'f', -1, 64),
			strconv.FormatFloat(r.SavingsPct, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMeasurement describes a single route measurement.
func WriteMeasurement(w io.Writer, origin, destination string, m model.Measurement) error {
	_, err := fmt.Fprintf(w, "Measure route from '%s' to '%s'.\n- Distance: %s meters\n- Duration: %d seconds\n",
		origin, destination, strconv.FormatFloat(m.DistanceMeters, 'f', -1, 64), int64(m.Duration.Seconds()))
	return err
}
