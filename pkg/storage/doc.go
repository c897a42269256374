// Package storage handles writing fetched result pages to the output file.
//
// All pages of a query land in one UTF-8 TSV file: one header row followed
// by the data rows of every page in the order received. The writer keeps a
// running count of data rows for progress reporting.
package storage
