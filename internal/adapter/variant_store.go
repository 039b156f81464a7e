package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "crusher.dev/pkg/crusher/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFileName is the name of the manifest written next to the variants.
	ManifestFileName = "manifest.yaml"

	dirPerm  os.FileMode = 0o750
	filePerm os.FileMode = 0o644
)

// VariantStore persists generated variants into a destination directory.
type VariantStore interface {
	// Prepare makes sure dir exists and reports whether it had to be created.
	Prepare(dir m.Path) (bool, error)

	// Save writes one variant under name and returns the path it was written to.
	Save(ctx context.Context, dir m.Path, name string, variant m.Variant) (m.Path, error)

	// SaveManifest writes the run manifest into dir.
	SaveManifest(dir m.Path, manifest m.Manifest) error
}

type variantStore struct{}

// NewVariantStore constructs the filesystem-backed VariantStore.
func NewVariantStore() VariantStore {
	return &variantStore{}
}

func (vs *variantStore) Prepare(dir m.Path) (bool, error) {
	info, err := os.Stat(string(dir))
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("output path %s is not a directory", dir)
		}

		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat output directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(string(dir), dirPerm); err != nil {
		return false, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	slog.Debug("created output directory", "path", dir)

	return true, nil
}

func (vs *variantStore) Save(ctx context.Context, dir m.Path, name string, variant m.Variant) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if name == "" {
		return "", fmt.Errorf("missing file name for variant %d", variant.Index)
	}

	target := filepath.Join(string(dir), name)

	// #nosec G306 - variants are meant to be read by other tools
	if err := os.WriteFile(target, []byte(variant.Code), filePerm); err != nil {
		return "", fmt.Errorf("write variant %d to %s: %w", variant.Index, target, err)
	}

	return m.Path(target), nil
}

func (vs *variantStore) SaveManifest(dir m.Path, manifest m.Manifest) error {
	target := filepath.Join(string(dir), ManifestFileName)

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create manifest %s: %w", target, err)
	}

	defer func() {
		_ = f.Close()
	}()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("encode manifest %s: %w", target, err)
	}

	return encoder.Close()
}
