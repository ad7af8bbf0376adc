package funimg

import "fmt"

// Fraction is a rational number in [0,1] kept in lowest terms.
type Fraction struct {
	Num int
	Den int
}

// String returns the fraction in the n/d form.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Less reports whether f is strictly smaller than g.
func (f Fraction) Less(g Fraction) bool {
	return f.Num*g.Den < g.Num*f.Den
}

// GCD returns the greatest common divisor of a and b using the Euclidean algorithm.
// The caller must ensure at least one of the arguments is non zero.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	if b > a {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce returns the fraction divided by the gcd of its components.
// A zero numerator is normalized to 0/1.
func Reduce(f Fraction) Fraction {
	if f.Num == 0 {
		return Fraction{0, 1}
	}
	for {
		g := GCD(f.Num, f.Den)
		if g == 1 {
			return f
		}
		f = Fraction{f.Num / g, f.Den / g}
	}
}

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// DivisorCount returns one plus the number of integers in [2, floor(sqrt(n))]
// dividing n. This counts only the divisors up to the square root, which is
// what the divisor spiral uses for sizing its circles. It returns 0 for n < 1.
func DivisorCount(n int) int {
	if n < 1 {
		return 0
	}
	count := 1
	for d := 2; d <= isqrt(n); d++ {
		if n%d == 0 {
			count++
		}
	}
	return count
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
