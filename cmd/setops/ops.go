package main

import (
	"iter"

	"github.com/spf13/cobra"

	"itertools/multiset"
	"itertools/seqs"
	"itertools/value"
)

// setOp combines the decoded inputs under the given key.
type setOp func(key func(any) value.Key, inputs []iter.Seq[any]) (iter.Seq[any], error)

func (a *app) setOpCommands() []*cobra.Command {
	var minCount int
	partial := a.setOpCmd("partial [FILE...]", "Keep values present in at least --min inputs",
		func(key func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
			return multiset.PartialIntersectionBy(minCount, key, in...)
		})
	partial.Flags().IntVar(&minCount, "min", 2, "number of inputs a value must appear in")

	return []*cobra.Command{
		a.setOpCmd("union [FILE...]", "Keep every value at its largest multiplicity",
			func(key func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
				return multiset.UnionBy(key, in...), nil
			}),
		a.setOpCmd("intersection [FILE...]", "Keep values present in every input, at their smallest multiplicity",
			func(key func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
				return multiset.IntersectionBy(key, in...), nil
			}),
		partial,
		a.setOpCmd("symdiff [FILE...]", "Keep values present in exactly one input",
			func(key func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
				return multiset.SymmetricDifferenceBy(key, in...), nil
			}),
		a.setOpCmd("symdiff-nonstrict [FILE...]", "Fold pairwise symmetric differences under loose equality",
			func(_ func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
				return multiset.SymmetricDifferenceNonStrict(in...), nil
			}),
		a.setOpCmd("distinct [FILE...]", "Keep the first occurrence of each value across all inputs",
			func(key func(any) value.Key, in []iter.Seq[any]) (iter.Seq[any], error) {
				return multiset.DistinctBy(key, seqs.Chain(in...)), nil
			}),
	}
}

func (a *app) setOpCmd(use, short string, op setOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(cmd, args)
			if err != nil {
				return err
			}
			result, err := op(value.KeyFunc[any](a.policy), inputs)
			if err != nil {
				return err
			}
			return a.writeValues(cmd, cmd.Name(), result)
		},
	}
}

func (a *app) chainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain [FILE...]",
		Short: "Concatenate the inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(cmd, args)
			if err != nil {
				return err
			}
			return a.writeValues(cmd, cmd.Name(), seqs.Chain(inputs...))
		},
	}
}

func (a *app) zipCmd() *cobra.Command {
	var longest bool
	cmd := &cobra.Command{
		Use:   "zip [FILE...]",
		Short: "Group the i-th value of every input into a row",
		Long: `zip stops at the shortest input. With --longest it runs to the longest
and fills missing positions with null.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(cmd, args)
			if err != nil {
				return err
			}
			rows := seqs.Zip(inputs...)
			if longest {
				rows = seqs.ZipLongest[any](nil, inputs...)
			}
			return a.writeValues(cmd, cmd.Name(), seqs.Map(rows, func(row []any) any { return row }))
		},
	}
	cmd.Flags().BoolVar(&longest, "longest", false, "run to the longest input")
	return cmd
}
