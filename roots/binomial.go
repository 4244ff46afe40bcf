package roots

// Binomials returns the first n rows of Pascal's triangle.
// Row k holds the binomial coefficients C(k, 0), ..., C(k, k).
func Binomials(n int) (rows [][]int) {

	if n <= 0 {
		return nil
	}

	rows = make([][]int, n)
	rows[0] = []int{1}

	for k := 1; k < n; k++ {
		prev := rows[k-1]
		row := make([]int, k+1)
		for j := range row {
			if j < k {
				row[j] += prev[j]
			}
			if j > 0 {
				row[j] += prev[j-1]
			}
		}
		rows[k] = row
	}

	return
}
