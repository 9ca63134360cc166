//go:build !race

package inkpress

func passwordHashCost() int {
	return 14
}
