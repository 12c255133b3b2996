package fft

// bitReverse reorders the n complex samples of buf into bit-reversed index
// order. j tracks the reversal of i incrementally: adding one to a reversed
// number clears its leading ones from the top and sets the first zero.
func bitReverse(buf []float32, n int) {
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit

		if i < j {
			a, b := 2*i, 2*j
			buf[a], buf[b] = buf[b], buf[a]
			buf[a+1], buf[b+1] = buf[b+1], buf[a+1]
		}
	}
}
