package geom

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ReadCircles reads n circles from r as whitespace separated "x y r" triples.
// Tokens after the last needed one are left unread.
func ReadCircles(r io.Reader, n int) ([]Circle, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	vals := make([]float64, 0, 3*n)
	for len(vals) < 3*n && s.Scan() {
		v, err := strconv.ParseFloat(s.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", len(vals)/3+1)
		}
		vals = append(vals, v)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "can't read circles")
	}
	if len(vals) < 3*n {
		return nil, errors.Errorf("expected %d numbers, got %d", 3*n, len(vals))
	}

	circles := make([]Circle, n)
	for i := range circles {
		circles[i] = NewCircle(vals[3*i], vals[3*i+1], vals[3*i+2])
	}
	return circles, nil
}
