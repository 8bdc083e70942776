package snake

// placeFood puts food on a random free cell and reports whether one existed.
//
// Cells are drawn uniformly until a free one turns up. After maxFoodAttempts
// misses the free cells are enumerated and one is picked uniformly, so the
// distribution is the same either way and a crowded board cannot stall a step.
func (e *Engine) placeFood() bool {
	free := len(e.occupied) - e.body.Len()
	if free <= 0 {
		e.hasFood = false
		return false
	}

	for range e.maxFoodAttempts {
		p := Point{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if !e.occupied[e.index(p)] {
			e.food = p
			e.hasFood = true
			return true
		}
	}

	if p, ok := e.nthFreeCell(e.rng.Intn(free)); ok {
		e.food = p
		e.hasFood = true
		return true
	}
	e.hasFood = false
	return false
}

// nthFreeCell returns the n-th unoccupied cell in row-major order.
func (e *Engine) nthFreeCell(n int) (Point, bool) {
	for i, taken := range e.occupied {
		if taken {
			continue
		}
		if n == 0 {
			return Point{X: i % e.width, Y: i / e.width}, true
		}
		n--
	}
	return Point{}, false
}

// FreeCells returns how many cells are neither snake nor food.
func (e *Engine) FreeCells() int {
	n := len(e.occupied) - e.body.Len()
	if e.hasFood {
		n--
	}
	return max(0, n)
}
