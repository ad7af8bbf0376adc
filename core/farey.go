package funimg

// FareyIterator produces the fractions of the Farey sequence of order n,
// i.e. all the completely reduced fractions in [0,1] with denominators
// less than or equal to n. For n = 5 the ascending sequence is
// 0/1, 1/5, 1/4, 1/3, 2/5, 1/2, 3/5, 2/3, 3/4, 4/5, 1/1.
type FareyIterator struct {
	n          int
	descending bool
	emitted    int
	last       Fraction // most recently emitted fraction
	prev       Fraction // fraction emitted before last
}

// NewFareyIterator returns an ascending iterator of order n, starting at 0/1.
func NewFareyIterator(n int) *FareyIterator {
	return &FareyIterator{n: n}
}

// NewDescendingFareyIterator returns a descending iterator of order n, starting at 1/1.
func NewDescendingFareyIterator(n int) *FareyIterator {
	return &FareyIterator{n: n, descending: true}
}

// Next returns the next fraction of the sequence.
// It returns false once the terminal fraction has been emitted.
func (it *FareyIterator) Next() (Fraction, bool) {
	if it.done() {
		return Fraction{}, false
	}

	var next Fraction
	switch it.emitted {
	case 0:
		if it.descending {
			next = Fraction{1, 1}
		} else {
			next = Fraction{0, 1}
		}
	case 1:
		if it.descending {
			next = Fraction{it.n - 1, it.n}
		} else {
			next = Fraction{1, it.n}
		}
	default:
		// For consecutive terms h/k, h''/k'', h'/k' the middle term is the
		// mediant (h+h')/(k+k'), so h' = q*h''-h and k' = q*k''-k where
		// q is the largest multiple keeping k' <= n.
		q := (it.n + it.prev.Den) / it.last.Den
		next = Reduce(Fraction{
			Num: q*it.last.Num - it.prev.Num,
			Den: q*it.last.Den - it.prev.Den,
		})
	}
	it.prev, it.last = it.last, next
	it.emitted++

	return next, true
}

// done reports whether the terminal fraction was already emitted.
func (it *FareyIterator) done() bool {
	if it.emitted == 0 {
		return false
	}
	if it.descending {
		return it.last.Num == 0
	}
	return it.last.Num == 1 && it.last.Den == 1
}

// FareySequence collects the ascending Farey sequence of order n.
func FareySequence(n int) []Fraction {
	var seq []Fraction
	it := NewFareyIterator(n)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		seq = append(seq, f)
	}
	return seq
}

// FareyLength returns the number of terms in the Farey sequence of order n,
// which is one plus the sum of Euler's totient over 1..n.
func FareyLength(n int) int {
	length := 1
	for k := 1; k <= n; k++ {
		length += totient(k)
	}
	return length
}

func totient(n int) int {
	result := n
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			for n%p == 0 {
				n /= p
			}
			result -= result / p
		}
	}
	if n > 1 {
		result -= result / n
	}
	return result
}
