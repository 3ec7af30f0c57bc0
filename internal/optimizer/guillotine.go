package optimizer

import (
	"math"
	"slices"
)

// sheetRect is one rectangle to place on a layer floor. The ref index
// ties a placed rectangle back to the candidate that produced it.
type sheetRect struct {
	ref  int
	w, l float64
}

// placedRect is a successfully placed rectangle with its origin.
type placedRect struct {
	ref  int
	x, y float64
	w, l float64
}

type freeRect struct {
	x, y float64
	w, l float64
}

type sheetResult struct {
	placed   []placedRect
	failed   []sheetRect
	usedArea float64
}

// packSheet places rectangles onto a width × length sheet using a
// guillotine heuristic: best-area-fit over a free-rectangle list, each
// placement splitting the chosen free rectangle into one rectangle to
// its right and one below. Free rectangles are never merged, so later
// inputs can fail even when enough total area remains; that is a
// deliberate speed/quality trade-off. Input order is the caller's.
func packSheet(width, length float64, rects []sheetRect) sheetResult {
	free := []freeRect{{x: 0, y: 0, w: width, l: length}}
	var res sheetResult

	for _, r := range rects {
		best := -1
		bestWaste := math.MaxFloat64
		for i, f := range free {
			if r.w > f.w+heightTol || r.l > f.l+heightTol {
				continue
			}
			waste := f.w*f.l - r.w*r.l
			if waste < bestWaste {
				bestWaste = waste
				best = i
			}
		}
		if best < 0 {
			res.failed = append(res.failed, r)
			continue
		}

		f := free[best]
		res.placed = append(res.placed, placedRect{ref: r.ref, x: f.x, y: f.y, w: r.w, l: r.l})
		res.usedArea += r.w * r.l
		free = slices.Delete(free, best, best+1)

		right := freeRect{x: f.x + r.w, y: f.y, w: f.w - r.w, l: r.l}
		below := freeRect{x: f.x, y: f.y + r.l, w: f.w, l: f.l - r.l}
		if right.w > heightTol && right.l > heightTol {
			free = append(free, right)
		}
		if below.w > heightTol && below.l > heightTol {
			free = append(free, below)
		}
	}
	return res
}
