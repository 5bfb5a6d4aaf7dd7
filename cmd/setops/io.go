package main

import (
	"encoding/json"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"itertools/internal/config"
	"itertools/seqs"
	"itertools/value"
)

const stdinName = "-"

// readInputs decodes every file and converts each document into a
// sequence. All files are read and checked before any operation runs.
func (a *app) readInputs(cmd *cobra.Command, paths []string) ([]iter.Seq[any], error) {
	out := make([]iter.Seq[any], 0, len(paths))
	for _, path := range paths {
		doc, err := a.readDocument(cmd.InOrStdin(), path)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			out = append(out, seqs.Empty[any])
			continue
		}
		seq, err := seqs.From(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: document must be a list or mapping", path)
		}
		out = append(out, seq)
	}
	return out, nil
}

func (a *app) readDocument(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	// JSON is a subset of YAML, so one decoder serves both.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	a.logger.Debug("loaded document", "file", path, "size", humanize.Bytes(uint64(len(data))))
	return doc, nil
}

// writeValues applies sort_output and limit, then encodes the values as one
// list document.
func (a *app) writeValues(cmd *cobra.Command, op string, seq iter.Seq[any]) error {
	if a.cfg.SortOutput {
		seq = sortedByKey(seq, a.policy)
	}
	if a.cfg.Limit > 0 {
		seq = seqs.Take(seq, a.cfg.Limit)
	}
	out := slices.Collect(seq)
	if out == nil {
		out = []any{}
	}
	a.logger.Info("operation finished", "op", op, "results", humanize.Comma(int64(len(out))))
	return a.writeDocument(cmd.OutOrStdout(), out)
}

func (a *app) writeDocument(w io.Writer, doc any) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(doc))
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
}

// sortedByKey drains seq and yields it ordered by canonical key. Equal keys
// keep their relative order.
func sortedByKey(seq iter.Seq[any], p value.Policy) iter.Seq[any] {
	return func(yield func(any) bool) {
		type keyed struct {
			key string
			v   any
		}
		var all []keyed
		for v := range seq {
			all = append(all, keyed{value.Classify(v, p).String(), v})
		}
		slices.SortStableFunc(all, func(x, y keyed) int {
			return strings.Compare(x.key, y.key)
		})
		for _, kv := range all {
			if !yield(kv.v) {
				return
			}
		}
	}
}
