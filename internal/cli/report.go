package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"fractionbom/pkg/buildinfo"
	"fractionbom/pkg/fraction"
)

// scanReport is the machine-readable output of a scan run, consumed by
// downstream build tooling.
type scanReport struct {
	RunID         string                         `json:"runId"`
	GeneratedAt   time.Time                      `json:"generatedAt"`
	Tool          string                         `json:"tool"`
	Root          string                         `json:"root"`
	Fractions     []*fraction.FractionMetadata   `json:"fractions"`
	BOMInclusions []*fraction.DependencyMetadata `json:"bomInclusions,omitempty"`
}

// newScanReport assembles a report with a fresh run id.
func newScanReport(root string, fractions []*fraction.FractionMetadata, inclusions []*fraction.DependencyMetadata) scanReport {
	return scanReport{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Tool:          appName + " " + buildinfo.Version,
		Root:          root,
		Fractions:     fractions,
		BOMInclusions: inclusions,
	}
}

// writeReport marshals the report and writes it to path, or to stdout when
// path is "-".
func writeReport(path string, report scanReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
