package tabular

// RawRow maps a column header to the raw cell text for one record.
type RawRow map[string]string

// Frame is a raw tabular file as read from disk: ordered headers plus
// string-valued rows. Frames are read-only once loaded; all mutation
// happens downstream in the preparer.
type Frame struct {
	Headers []string
	Rows    []RawRow
}

// RowCount returns the number of data rows.
func (f *Frame) RowCount() int {
	return len(f.Rows)
}

// HasColumn reports whether the frame carries the named header.
func (f *Frame) HasColumn(name string) bool {
	for _, h := range f.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Append returns a new frame holding this frame's rows followed by the
// other frame's rows. Headers come from the receiver; the caller is
// responsible for schema compatibility.
func (f *Frame) Append(other *Frame) *Frame {
	rows := make([]RawRow, 0, len(f.Rows)+len(other.Rows))
	rows = append(rows, f.Rows...)
	rows = append(rows, other.Rows...)
	headers := make([]string, len(f.Headers))
	copy(headers, f.Headers)
	return &Frame{Headers: headers, Rows: rows}
}
