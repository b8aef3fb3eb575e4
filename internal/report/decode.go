package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DecodeBundle reads a combined bundle document. Unknown fields are rejected
// so that a misspelled stage key fails loudly instead of decoding to a clean
// report.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	b := Clean()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return b, nil
}

// LoadBundleFile reads a combined bundle from a single JSON file.
func LoadBundleFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeBundle(f)
}

// LoadBundleDir reads per-stage reports from <dir>/<stage>.json, one file per
// stage, all five in parallel. A missing file leaves the stage at its clean
// default, so collaborators only have to write the stages they actually ran.
func LoadBundleDir(ctx context.Context, dir string) (*Bundle, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	b := Clean()
	g, _ := errgroup.WithContext(ctx)
	for _, stage := range Stages() {
		stage := stage
		g.Go(func() error {
			path := filepath.Join(dir, stage.String()+".json")
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			// каждая горутина пишет в собственную секцию Bundle
			if err := decodeStage(b, stage, data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeStage(b *Bundle, stage Stage, data []byte) error {
	switch stage {
	case StageVerifier:
		return json.Unmarshal(data, &b.Verifier)
	case StageParser:
		return json.Unmarshal(data, &b.Parser)
	case StageInstructor:
		return json.Unmarshal(data, &b.Instructor)
	case StageAnalyzer:
		return json.Unmarshal(data, &b.Analyzer)
	case StageStudent:
		return json.Unmarshal(data, &b.Student)
	}
	return fmt.Errorf("unknown stage %d", stage)
}

// Canonical returns a deterministic encoding of the bundle, used for digest
// keys. encoding/json sorts map keys, so equal bundles always encode equal.
func (b *Bundle) Canonical() ([]byte, error) {
	return json.Marshal(b)
}
