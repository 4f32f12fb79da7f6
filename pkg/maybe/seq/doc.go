// Package seq applies nil-propagation to iter.Seq sequences. A nil sequence
// is absent; nil elements (and absent Option elements) are skipped by Do and
// mapped to the zero result by With, so With keeps the source length.
package seq
