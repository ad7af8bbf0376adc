package funimg

import "image"

// Direction is one of the four cardinal directions a spiral walks in.
type Direction int

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Handedness defines the way the spiral turns.
type Handedness int

const (
	Clockwise Handedness = iota
	AntiClockwise
)

// next returns the direction obtained by turning once with the given handedness.
func (d Direction) next(h Handedness) Direction {
	switch d {
	case Up:
		if h == Clockwise {
			return Right
		}
		return Left
	case Left:
		if h == Clockwise {
			return Up
		}
		return Down
	case Right:
		if h == Clockwise {
			return Down
		}
		return Up
	default:
		if h == Clockwise {
			return Left
		}
		return Right
	}
}

func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// sameAxis reports whether both directions lie on the same (vertical or horizontal) axis.
func (d Direction) sameAxis(o Direction) bool {
	return d.vertical() == o.vertical()
}

// SpiralIterator walks an outward square spiral starting from a center point.
// The first leg goes right, and leg lengths grow as 1,1,2,2,3,3,...
type SpiralIterator struct {
	direction  Direction
	handedness Handedness
	start      Direction
	legSteps   int // steps taken in the current leg
	legLen     int // length of the current leg
	pos        image.Point
	total      int
	emitted    int
}

// NewSpiralIterator creates a spiral producing exactly total coordinates.
func NewSpiralIterator(total int, center image.Point, h Handedness) *SpiralIterator {
	return &SpiralIterator{
		direction:  Right,
		handedness: h,
		start:      Right,
		legLen:     1,
		pos:        center,
		total:      total,
	}
}

// Next returns the next spiral coordinate, or false once total points were produced.
func (s *SpiralIterator) Next() (image.Point, bool) {
	if s.emitted >= s.total {
		return image.Point{}, false
	}
	p := s.pos
	s.emitted++

	switch s.direction {
	case Up:
		s.pos.Y--
	case Left:
		s.pos.X--
	case Right:
		s.pos.X++
	case Down:
		s.pos.Y++
	}

	s.legSteps++
	if s.legSteps >= s.legLen {
		next := s.direction.next(s.handedness)
		if s.start.sameAxis(next) {
			s.legLen++
		}
		s.legSteps = 0
		s.direction = next
	}

	return p, true
}

// UlamSide returns the width of the square image holding a spiral of total
// points. It is the rounded up square root, bumped to an odd number so the
// spiral starts on the central pixel.
func UlamSide(total int) int {
	side := isqrt(total)
	if side*side != total {
		side++
	}
	if side%2 == 0 {
		side++
	}
	return side
}
