// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultExportFile = "verification_results.json"

type ExportMeta struct {
	Version   string `json:"version"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Reference string `json:"reference"`
	RunID     string `json:"run_id"`
}

func NewExportMeta(now time.Time) ExportMeta {
	return ExportMeta{
		Version:   Version,
		Date:      now.Format("2006-01-02"),
		GoVersion: runtime.Version(),
		Reference: Reference,
		RunID:     uuid.NewString(),
	}
}

// One row per result (no note, no components)
type ExportRow struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Formula   string  `json:"formula"`
	Predicted float64 `json:"predicted"`
	Reference float64 `json:"reference"`
	ErrorPPB  float64 `json:"error_ppb"`
}

type Export struct {
	Metadata ExportMeta  `json:"metadata"`
	Results  []ExportRow `json:"results"`
}

func NewExport(results []Result, meta ExportMeta) *Export {
	rows := make([]ExportRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, ExportRow{
			Name:      r.Name,
			Symbol:    r.Symbol,
			Formula:   r.Formula,
			Predicted: r.Predicted,
			Reference: r.Reference,
			ErrorPPB:  r.ErrorPPB,
		})
	}
	return &Export{Metadata: meta, Results: rows}
}

func (p *Export) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// WriteFile writes the document to path.
// The whole buffer goes to a temporary file in the same directory, which then replaces path.
func (p *Export) WriteFile(path string) error {
	b, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info("results exported",
		zap.String("path", path),
		zap.Int("rows", len(p.Results)),
		zap.String("run_id", p.Metadata.RunID))
	return nil
}
