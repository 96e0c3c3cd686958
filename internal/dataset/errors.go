package dataset

import "fmt"

// DataFormatError indicates the input file is structurally unusable:
// a required column is missing, or a non-missing value failed coercion.
// Loading errors are fatal and produce no partial result.
type DataFormatError struct {
	Column string
	Row    int // 1-based data row, 0 when the problem is the header
	Err    error
}

func (e *DataFormatError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("data format error: column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("data format error: row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// EmptyDatasetError indicates a KPI computation was requested over zero
// tracks. Ratio KPIs are undefined there, so the engine refuses to run
// rather than return NaN.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "empty dataset: no tracks match the current filter"
}

// MalformedArtistCreditError reports a credit string that normalized to an
// empty artist list. The track stays in track-level KPIs but contributes
// no artist rows and no graph edges.
type MalformedArtistCreditError struct {
	Song   string
	Credit string
}

func (e *MalformedArtistCreditError) Error() string {
	return fmt.Sprintf("malformed artist credit %q on track %q: no artist names after normalization", e.Credit, e.Song)
}
