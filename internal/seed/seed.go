// Package seed carga el catálogo inicial (razas, países, hobbies).
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/platform/logger"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Breeds    []string `yaml:"breeds"`
	Countries []string `yaml:"countries"`
	Hobbies   []string `yaml:"hobbies"`
}

func (f Fixtures) byKind() map[catalog.Kind][]string {
	return map[catalog.Kind][]string{
		catalog.KindBreed:   f.Breeds,
		catalog.KindCountry: f.Countries,
		catalog.KindHobby:   f.Hobbies,
	}
}

// Result cuenta lo creado y lo que ya existía, por kind.
type Result struct {
	Created map[catalog.Kind]int
	Skipped map[catalog.Kind]int
}

func Load(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

// LoadFile lee path; con path vacío usa los fixtures embebidos.
func LoadFile(path string) (Fixtures, error) {
	if path == "" {
		return Load(bytes.NewReader(defaultFixtures))
	}
	fh, err := os.Open(path)
	if err != nil {
		return Fixtures{}, err
	}
	defer fh.Close()
	return Load(fh)
}

// Apply crea las entradas que falten. Se puede correr varias veces.
func Apply(ctx context.Context, svc *catalog.Service, f Fixtures, log logger.Logger) (Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	res := Result{
		Created: map[catalog.Kind]int{},
		Skipped: map[catalog.Kind]int{},
	}

	groups := f.byKind()
	for _, kind := range catalog.Kinds {
		for _, name := range groups[kind] {
			_, err := svc.Create(ctx, kind, name)
			switch {
			case err == nil:
				res.Created[kind]++
			case errors.Is(err, catalog.ErrConflict):
				res.Skipped[kind]++
			default:
				return res, fmt.Errorf("seed %s %q: %w", kind, name, err)
			}
		}
	}

	log.Info("catalog seeded", map[string]any{
		"breeds_created":    res.Created[catalog.KindBreed],
		"countries_created": res.Created[catalog.KindCountry],
		"hobbies_created":   res.Created[catalog.KindHobby],
	})
	return res, nil
}
