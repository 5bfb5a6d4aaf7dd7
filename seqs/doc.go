/*
Package seqs provides helpers for Go 1.23+ iterators (iter.Seq).

It covers:

  - **Sources**: [Values], [FromIterator], [FromChannel], [FromPull] and the
    reflective [From], which turns any slice, array, map, channel, iter.Seq
    or HasNext/Next cursor into an iter.Seq[any].
  - **Recombination**: [Chain], [Zip], [ZipLongest].
  - **Flow control**: [Take], [Skip], [Chunk], [Window].
  - **Reductions**: [ToSum], [ToProduct], [ToAverage], [ToMinMax], [ToBounds],
    [ToNth], [ToFirstAndLast], [ToRandomValue], [ToValue], [ToString] and
    friends. [ToFirst], [ToLast], [ToFirstAndLast], [ToRandomValue] and
    [ToAverage] return [ErrEmpty] on an empty input, [ToNth] returns
    [ErrOutOfRange]; the bound helpers ([ToMin], [ToMax], [ToMinMax], [ToMinMaxBy],
    [ToBounds], [ToAmplitude]) report ok == false instead.
  - **Predicates**: [IsSorted], [IsReversed], [ExactlyN], [Any], [All].

Every helper reads its input at most once, left to right, and stops
pulling as soon as the consumer stops.

	for row := range seqs.ZipLongest(0, slices.Values(a), slices.Values(b)) {
		fmt.Println(row)
	}
*/
package seqs
