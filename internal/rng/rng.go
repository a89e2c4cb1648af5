package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Shuffle performs a Fisher-Yates shuffle of n elements using swap
func Shuffle(g Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		swap(i, j)
	}
}

// Pick returns a random index in [0, n) that is not equal to exclude
// n must be at least 2
func Pick(g Generator, n, exclude int) int {
	i := g.Intn(n - 1)
	if i >= exclude {
		i++
	}

	return i
}
