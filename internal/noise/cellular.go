package noise

import "math"

// cellularBasis is a seeded Worley (cell) noise: one feature point per unit
// grid cell, value derived from the distance to the nearest feature point.
// Neither go-perlin nor opensimplex-go offers a cellular variant, so this
// one is generated locally from the same seed contract.
type cellularBasis struct {
	seed int64
}

func (b cellularBasis) eval2(x, y float64) float64 {
	cx, cy := math.Floor(x), math.Floor(y)
	minDist := math.MaxFloat64
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			gx, gy := cx+dx, cy+dy
			fx := gx + hash01(b.seed, int64(gx), int64(gy), 0)
			fy := gy + hash01(b.seed, int64(gx), int64(gy), 1)
			ddx, ddy := x-fx, y-fy
			d := ddx*ddx + ddy*ddy
			if d < minDist {
				minDist = d
			}
		}
	}
	return distToValue(minDist)
}

func (b cellularBasis) eval3(x, y, z float64) float64 {
	cx, cy, cz := math.Floor(x), math.Floor(y), math.Floor(z)
	minDist := math.MaxFloat64
	for dz := -1.0; dz <= 1; dz++ {
		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				gx, gy, gz := cx+dx, cy+dy, cz+dz
				h := int64(gz)*2862933555777941757 ^ b.seed
				fx := gx + hash01(h, int64(gx), int64(gy), 0)
				fy := gy + hash01(h, int64(gx), int64(gy), 1)
				fz := gz + hash01(h, int64(gx), int64(gy), 2)
				ddx, ddy, ddz := x-fx, y-fy, z-fz
				d := ddx*ddx + ddy*ddy + ddz*ddz
				if d < minDist {
					minDist = d
				}
			}
		}
	}
	return distToValue(minDist)
}

// distToValue maps a squared nearest-feature distance into [-1, 1].
// Distances within a unit grid cell stay below ~2, so the result is
// clamped at the far end.
func distToValue(d2 float64) float64 {
	v := math.Sqrt(d2) - 1
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// hash01 returns a deterministic value in [0, 1) for a grid cell corner.
func hash01(seed, x, y, k int64) float64 {
	h := uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(k)*0x165667B19E3779F9
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}
