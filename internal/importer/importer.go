package importer

import (
	"io"

	"budgetscope/internal/transaction"
)

// Format identifies a supported statement file format.
type Format string

const (
	FormatCSV Format = "csv"
)

type Parser interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
