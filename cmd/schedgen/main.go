// Command schedgen generates exercise sheets: it searches for random
// schedules matching interesting mixes of the five correctness properties,
// then writes the schedules, their solution table, and their conflict graphs
// as LaTeX and Graphviz artifacts.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/elliotcourant/schedules"
	"github.com/elliotcourant/schedules/generate"
	"github.com/elliotcourant/schedules/render"
	"github.com/elliotcourant/timber"
	"github.com/pkg/errors"
)

type predicate func(schedules.Schedule) bool

type mix struct {
	name      string
	predicate predicate
}

func neg(p predicate) predicate {
	return func(s schedules.Schedule) bool {
		return !p(s)
	}
}

func allOf(ps ...predicate) predicate {
	return func(s schedules.Schedule) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func main() {
	outDir := flag.String("out", ".", "directory to write the artifacts to")
	seed := flag.Int64("seed", 42, "seed for the schedule generator")
	attempts := flag.Int("attempts", 50000, "generation attempts per property mix")
	flag.Parse()

	vs, cs := schedules.ViewSerializable, schedules.ConflictSerializable
	rec, aca, sct := schedules.Recoverable, schedules.AvoidsCascadingAborts, schedules.Strict

	mixes := []mix{
		{"strict, conflict-serializable", allOf(sct, cs)},
		{"strict, not view-serializable", allOf(sct, neg(vs))},
		{"aca, conflict-serializable", allOf(neg(sct), aca, cs)},
		{"aca, view-serializable only", allOf(neg(sct), aca, neg(cs), vs)},
		{"aca, not view-serializable", allOf(neg(sct), aca, neg(vs))},
		{"recoverable, conflict-serializable", allOf(neg(aca), rec, cs)},
		{"recoverable, view-serializable only", allOf(neg(aca), rec, neg(cs), vs)},
		{"recoverable, not view-serializable", allOf(neg(aca), rec, neg(vs))},
		{"not recoverable, conflict-serializable", allOf(neg(rec), cs)},
		{"not recoverable, view-serializable only", allOf(neg(rec), neg(cs), vs)},
		{"not recoverable, not view-serializable", allOf(neg(rec), neg(vs))},
	}

	generator := generate.NewGenerator(rand.New(rand.NewSource(*seed)), generate.DefaultOptions)

	found := make([]schedules.Schedule, 0, len(mixes))
	for _, m := range mixes {
		s, err := generator.Find(m.predicate, *attempts)
		if err != nil {
			timber.Warningf("skipping %s: %v", m.name, err)
			continue
		}
		timber.Infof("%s  %s: %s", schedules.Characterize(s), m.name, s)
		found = append(found, s)
	}

	if err := writeArtifacts(*outDir, found); err != nil {
		timber.Fatalf("failed to write artifacts: %v", err)
	}
	timber.Infof("wrote %d exercises to %s", len(found), *outDir)
}

func writeArtifacts(dir string, found []schedules.Schedule) error {
	var short, solutions, tables strings.Builder
	for i, s := range found {
		atoms := make([]string, len(s))
		for j, a := range s {
			atoms[j] = render.TeX(a)
		}
		fmt.Fprintf(&short, "\\item %s\n", strings.Join(atoms, ", "))

		properties := schedules.Characterize(s)
		cells := make([]string, 0, 5)
		for _, flag := range []bool{
			properties.ViewSerializable,
			properties.ConflictSerializable,
			properties.Recoverable,
			properties.AvoidsCascadingAborts,
			properties.Strict,
		} {
			if flag {
				cells = append(cells, "$\\checkmark$")
			} else {
				cells = append(cells, "")
			}
		}
		fmt.Fprintf(&solutions, "%d & %s \\\\\\hline\n", i+1, strings.Join(cells, " & "))

		fmt.Fprintf(&tables, "%s\n", render.Table(s))

		marshaled, err := render.DOT(schedules.ConflictGraph(s))
		if err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("conflict-graph-%d.dot", i+1))
		if err := ioutil.WriteFile(name, marshaled, 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", name)
		}
	}

	for name, content := range map[string]string{
		"short.tex":     short.String(),
		"short-sol.tex": solutions.String(),
		"tables.tex":    tables.String(),
	} {
		path := filepath.Join(dir, name)
		if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}
