package main

import (
	"cmp"
	"iter"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"itertools/multiset"
	"itertools/seqs"
)

// fileStats summarises one input document.
type fileStats struct {
	File     string `yaml:"file" json:"file"`
	Items    int    `yaml:"items" json:"items"`
	Distinct int    `yaml:"distinct" json:"distinct"`
	// Numeric fields cover the int and float items only.
	Numbers int       `yaml:"numbers" json:"numbers"`
	Sum     float64   `yaml:"sum" json:"sum"`
	Min     *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64  `yaml:"max,omitempty" json:"max,omitempty"`
	Average *float64  `yaml:"average,omitempty" json:"average,omitempty"`
	Sorted  bool      `yaml:"sorted" json:"sorted"`
	Top     []counted `yaml:"top" json:"top"`
}

type counted struct {
	Value any `yaml:"value" json:"value"`
	Count int `yaml:"count" json:"count"`
}

func (a *app) statsCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Count items and summarise the numeric values of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(cmd, args)
			if err != nil {
				return err
			}
			out := make([]fileStats, len(inputs))
			for i, in := range inputs {
				out[i] = a.summarise(args[i], in, top)
			}
			return a.writeDocument(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&top, "top", 3, "number of most frequent values to list")
	return cmd
}

func (a *app) summarise(name string, in iter.Seq[any], top int) fileStats {
	items := slices.Collect(in)
	counts := multiset.Drain(slices.Values(items), a.policy)
	st := fileStats{
		File:     name,
		Items:    counts.Len(),
		Distinct: counts.Distinct(),
		Top:      mostFrequent(counts, top),
	}

	numbers := slices.Collect(seqs.FilterMap(slices.Values(items), asFloat))
	st.Sorted = seqs.IsSorted(slices.Values(numbers))
	st.Numbers = len(numbers)
	st.Sum = seqs.ToSum(slices.Values(numbers))
	if lo, hi, ok := seqs.ToMinMax(slices.Values(numbers)); ok {
		st.Min, st.Max = &lo, &hi
	}
	if avg, err := seqs.ToAverage(slices.Values(numbers)); err == nil {
		st.Average = &avg
	}

	a.logger.Debug("summarised",
		"file", name,
		"items", humanize.Comma(int64(st.Items)),
		"distinct", humanize.Comma(int64(st.Distinct)),
	)
	return st
}

// mostFrequent returns up to n entries ordered by descending count, ties
// broken by first appearance.
func mostFrequent[K comparable](m *multiset.Multiset[any, K], n int) []counted {
	entries := slices.Collect(m.Entries())
	slices.SortStableFunc(entries, func(x, y multiset.Entry[any, K]) int {
		return cmp.Compare(y.Count, x.Count)
	})
	out := make([]counted, 0, max(0, min(n, len(entries))))
	for e := range seqs.Take(slices.Values(entries), n) {
		out = append(out, counted{Value: e.Value, Count: e.Count})
	}
	return out
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
