package db

import "github.com/jackc/pgx/v5"

// CopyRow is any staging row that can emit its values in COPY column order.
type CopyRow interface {
	CopyValues() []any
}

// ChannelSource implements pgx.CopyFromSource by reading rows from a channel,
// providing natural backpressure between the flattener and the COPY writer.
type ChannelSource[T CopyRow] struct {
	ch      <-chan T
	current T
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource[T CopyRow](ch <-chan T) *ChannelSource[T] {
	return &ChannelSource[T]{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource[T]) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource[T]) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *ChannelSource[T]) Err() error {
	return s.err
}

// SliceSource adapts an in-memory row slice to pgx.CopyFromSource. The 835
// parser produces whole aggregates, so staged rows are usually already in
// memory.
func SliceSource[T CopyRow](rows []T) pgx.CopyFromSource {
	ch := make(chan T, len(rows))
	for _, r := range rows {
		ch <- r
	}
	close(ch)
	return NewChannelSource(ch)
}

var _ pgx.CopyFromSource = (*ChannelSource[*nopRow])(nil)

type nopRow struct{}

func (*nopRow) CopyValues() []any { return nil }
