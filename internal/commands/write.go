package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const header = "# Auto generated by fpgaflow\n\n"

// render produces the Makefile representation of the graph. Output depends
// only on graph state, so rendering the same graph twice is byte-identical.
func (g *Graph) render() ([]byte, error) {
	if g.defaultTarget == "" {
		return nil, errors.New("cannot serialize command graph: no default target set")
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "all: %s\n\n", g.defaultTarget)

	phony := []string{"all"}
	for _, r := range g.rules {
		if r.Phony {
			phony = append(phony, r.Targets...)
		}
		buf.WriteString(strings.Join(r.Targets, " "))
		buf.WriteByte(':')
		for _, d := range r.Deps {
			buf.WriteByte(' ')
			buf.WriteString(d)
		}
		buf.WriteByte('\n')
		if len(r.Command) > 0 {
			buf.WriteByte('\t')
			buf.WriteString(strings.Join(r.Command, " "))
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, ".PHONY: %s\n", strings.Join(phony, " "))
	return buf.Bytes(), nil
}

// Write serializes the graph to the given path and finalizes it. The write
// is atomic: the destination either receives the complete serialization or
// is left untouched. Writing an already finalized graph again yields
// byte-identical content.
func (g *Graph) Write(path string) error {
	content, err := g.render()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}

	g.finalized = true
	return nil
}
