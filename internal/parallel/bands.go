package parallel

// MinBandRows is the smallest band scheduled on its own.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most parts bands of near-equal size,
// none thinner than minRows except when height itself is smaller.
// The bands are ordered, contiguous and cover [0, height) exactly.
func SplitRows(height, parts, minRows int) []Band {
	if height <= 0 {
		return nil
	}
	if minRows < 1 {
		minRows = 1
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := height / minRows; parts > maxParts {
		parts = maxParts
	}
	if parts < 1 {
		parts = 1
	}

	bands := make([]Band, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range bands {
		n := base
		if i < extra {
			n++
		}
		bands[i] = Band{Y0: y, Y1: y + n}
		y += n
	}
	return bands
}

// ForEachBand calls fn for every band of [0, height). With a nil pool, or a
// single band, fn runs serially on the calling goroutine. It returns the
// bands that were scheduled.
func ForEachBand(p *WorkerPool, height int, fn func(y0, y1 int)) []Band {
	parts := 1
	if p != nil {
		parts = p.Workers() * 4
	}
	bands := SplitRows(height, parts, MinBandRows)

	if p == nil || len(bands) <= 1 {
		for _, b := range bands {
			fn(b.Y0, b.Y1)
		}
		return bands
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
	return bands
}
