// Package tabular writes an assembled model's rows to the paired "clean" and
// "noisy" TSV files spec.md §4.8 describes: a header row in each file naming
// the same columns in the same order (the noisy header also names each
// column's noise operator), one row per sample, a column per selected node.
package tabular
