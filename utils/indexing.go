package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRangeOffset(rmin, rmax int) (r Index) {
	// Input range is "1 based" and converted to zero based index
	return NewRange(rmin-1, rmax-1)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func NewConstant(N, val int) (r Index) {
	r = make(Index, N)
	for i := 0; i < N; i++ {
		r[i] = val
	}
	return
}

func NewStride(start, N, stride int) (r Index) {
	r = make(Index, N)
	for i := 0; i < N; i++ {
		r[i] = start + i*stride
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Contains(val int) bool {
	for _, ival := range I {
		if ival == val {
			return true
		}
	}
	return false
}
