// Package report renders solver results: a plain-text summary for the
// terminal and Graphviz DOT files of the (optionally colored) graph.
package report
