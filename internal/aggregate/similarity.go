package aggregate

// Ratio returns a normalized lexical similarity between two strings in
// [0, 1]. It is the classic longest-matching-block alignment measure:
// find the longest common substring, recurse on the pieces to its left
// and right, and report 2*M / (len(a)+len(b)) where M is the total
// number of matched characters. Identical strings score 1.0; a non-empty
// string against "" scores 0.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	matched := totalMatched(ra, rb)
	return 2.0 * float64(matched) / float64(len(ra)+len(rb))
}

// region is a pending (a-slice, b-slice) pair awaiting matching.
type region struct {
	alo, ahi, blo, bhi int
}

// totalMatched sums the sizes of all matching blocks between a and b.
func totalMatched(a, b []rune) int {
	// Index positions of each rune in b once, up front.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []region{{0, len(a), 0, len(b)}}

	for len(queue) > 0 {
		reg := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, b2j, reg)
		if size == 0 {
			continue
		}
		total += size

		if reg.alo < i && reg.blo < j {
			queue = append(queue, region{reg.alo, i, reg.blo, j})
		}
		if i+size < reg.ahi && j+size < reg.bhi {
			queue = append(queue, region{i + size, reg.ahi, j + size, reg.bhi})
		}
	}

	return total
}

// longestMatch finds the longest block of a[alo:ahi] that also occurs in
// b[blo:bhi], returning its start in a, start in b, and length.
func longestMatch(a []rune, b2j map[rune][]int, reg region) (besti, bestj, bestsize int) {
	besti, bestj = reg.alo, reg.blo

	// j2len[j] is the length of the longest match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := reg.alo; i < reg.ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < reg.blo {
				continue
			}
			if j >= reg.bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
