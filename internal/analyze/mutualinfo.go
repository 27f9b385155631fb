package analyze

import "math"

// miBins is the equal-width bin count used to discretize continuous
// values before estimating mutual information.
const miBins = 10

// mutualInfo estimates I(x; y) in nats from a binned joint histogram.
// The feature is always binned; the target is binned only for
// regression, classification targets are already discrete codes.
func mutualInfo(x, y []float64, binTarget bool) float64 {
	xb := discretize(x)
	var yb []int
	if binTarget {
		yb = discretize(y)
	} else {
		yb = codes(y)
	}

	n := len(x)
	if n == 0 {
		return 0
	}
	joint := make(map[[2]int]int, n)
	px := make(map[int]int, miBins)
	py := make(map[int]int, miBins)
	for i := 0; i < n; i++ {
		joint[[2]int{xb[i], yb[i]}]++
		px[xb[i]]++
		py[yb[i]]++
	}

	mi := 0.0
	fn := float64(n)
	for cell, c := range joint {
		pxy := float64(c) / fn
		mi += pxy * math.Log(pxy/(float64(px[cell[0]])/fn*float64(py[cell[1]])/fn))
	}
	if mi < 0 {
		return 0
	}
	return mi
}

func discretize(xs []float64) []int {
	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]int, len(xs))
	if hi == lo {
		return out
	}
	width := (hi - lo) / miBins
	for i, v := range xs {
		b := int((v - lo) / width)
		if b >= miBins {
			b = miBins - 1
		}
		out[i] = b
	}
	return out
}

// codes maps already-discrete float values to compact ints.
func codes(xs []float64) []int {
	seen := make(map[float64]int, 8)
	out := make([]int, len(xs))
	for i, v := range xs {
		c, ok := seen[v]
		if !ok {
			c = len(seen)
			seen[v] = c
		}
		out[i] = c
	}
	return out
}
