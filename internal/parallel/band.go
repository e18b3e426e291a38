package parallel

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// SplitRows divides rows into at most parts contiguous bands of nearly
// equal size. Earlier bands get the extra row when rows does not divide
// evenly. It returns nil when rows is not positive.
func SplitRows(rows, parts int) []Band {
	if rows <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > rows {
		parts = rows
	}

	bands := make([]Band, parts)
	base, extra := rows/parts, rows%parts
	start := 0
	for i := range bands {
		n := base
		if i < extra {
			n++
		}
		bands[i] = Band{Start: start, End: start + n}
		start += n
	}
	return bands
}

// ForEachBand splits rows into bands and runs fn for each band on pool,
// returning once every band is done. With a nil pool the bands run
// sequentially on the calling goroutine.
func ForEachBand(pool *WorkerPool, rows int, fn func(Band)) {
	if pool == nil || pool.Workers() == 1 {
		if rows > 0 {
			fn(Band{Start: 0, End: rows})
		}
		return
	}

	// A few bands per worker leaves room for stealing.
	bands := SplitRows(rows, pool.Workers()*4)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	pool.ExecuteAll(work)
}
