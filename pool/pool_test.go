package pool

import (
	"math"
	"testing"

	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/vmath"
)

// linePath is a straight line along +Z so placement is easy to check
type linePath struct{}

func (linePath) SampleAt(p float64) vmath.Vec3F {
	return vmath.Vec3F{Z: p * 100}
}

func obstaclePlacement() Placement {
	return Placement{
		From:      constants.ObstaclePathFrom,
		To:        constants.ObstaclePathTo,
		MinRadius: constants.ObstacleRadiusMinF * constants.TubeRadius,
		MaxRadius: constants.ObstacleRadiusMaxF * constants.TubeRadius,
	}
}

func countActive(p *Pool) int {
	n := 0
	p.Each(func(int, *Entity) { n++ })
	return n
}

func TestNewAllocatesInertEntities(t *testing.T) {
	rng := vmath.NewFastRand(7)
	p := New(KindObstacle, 10, rng)

	if p.Capacity() != 10 {
		t.Errorf("Expected capacity 10, got %d", p.Capacity())
	}
	if p.ActiveCount() != 0 || countActive(p) != 0 {
		t.Errorf("Expected no active entities after New")
	}
	for i := 0; i < p.Capacity(); i++ {
		s := p.At(i).RotationSpeed
		if s < -constants.RotationSpeedMax || s >= constants.RotationSpeedMax {
			t.Errorf("Entity %d rotation speed %v out of range", i, s)
		}
	}

	if New(KindCollectible, -3, rng).Capacity() != 0 {
		t.Errorf("Expected negative capacity to clamp to 0")
	}
}

func TestSpawnWaveSaturates(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -4, 0},
		{"partial", 5, 5},
		{"exact", 20, 20},
		{"over capacity", 75, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := vmath.NewFastRand(1)
			p := New(KindObstacle, 20, rng)
			got := p.SpawnWave(tt.n, obstaclePlacement(), linePath{}, rng)
			if got != tt.want {
				t.Errorf("Expected %d activated, got %d", tt.want, got)
			}
			if p.ActiveCount() != tt.want || countActive(p) != tt.want {
				t.Errorf("Expected active count %d, got %d (scan %d)", tt.want, p.ActiveCount(), countActive(p))
			}
		})
	}
}

func TestSpawnWaveLeavesNoStaleActives(t *testing.T) {
	rng := vmath.NewFastRand(3)
	p := New(KindObstacle, 30, rng)

	p.SpawnWave(25, obstaclePlacement(), linePath{}, rng)
	p.Deactivate(2)
	p.SpawnWave(8, obstaclePlacement(), linePath{}, rng)

	for i := 0; i < p.Capacity(); i++ {
		if got, want := p.At(i).Active, i < 8; got != want {
			t.Errorf("Entity %d: expected active=%v, got %v", i, want, got)
		}
	}
	if p.ActiveCount() != 8 {
		t.Errorf("Expected 8 active, got %d", p.ActiveCount())
	}
}

func TestSpawnWavePlacement(t *testing.T) {
	rng := vmath.NewFastRand(11)
	p := New(KindObstacle, 50, rng)
	place := obstaclePlacement()
	n := p.SpawnWave(10, place, linePath{}, rng)

	for i := 0; i < n; i++ {
		e := p.At(i)
		wantPath := place.From + float64(i)/float64(n)*(place.To-place.From)
		if math.Abs(e.PathPosition-wantPath) > 1e-12 {
			t.Errorf("Entity %d: expected path %v, got %v", i, wantPath, e.PathPosition)
		}
		if math.Abs(e.World.Z-wantPath*100) > 1e-9 {
			t.Errorf("Entity %d: expected Z on path sample, got %v", i, e.World.Z)
		}
		r := math.Hypot(e.World.X, e.World.Y)
		if r < place.MinRadius-1e-12 || r >= place.MaxRadius+1e-12 {
			t.Errorf("Entity %d: radius %v outside annulus [%v, %v)", i, r, place.MinRadius, place.MaxRadius)
		}
	}
}

func TestDeactivate(t *testing.T) {
	rng := vmath.NewFastRand(5)
	p := New(KindCollectible, 4, rng)
	p.SpawnWave(3, Placement{From: 0, To: 1}, linePath{}, rng)

	if !p.Deactivate(1) {
		t.Errorf("Expected first deactivate to succeed")
	}
	if p.Deactivate(1) {
		t.Errorf("Expected second deactivate to report false")
	}
	if p.Deactivate(3) {
		t.Errorf("Expected deactivating an inert slot to report false")
	}
	if p.Deactivate(-1) || p.Deactivate(99) {
		t.Errorf("Expected out of range deactivate to report false")
	}
	if p.ActiveCount() != 2 {
		t.Errorf("Expected 2 active, got %d", p.ActiveCount())
	}
}

func TestRotateOnlyActive(t *testing.T) {
	rng := vmath.NewFastRand(9)
	p := New(KindObstacle, 4, rng)
	p.SpawnWave(2, obstaclePlacement(), linePath{}, rng)
	p.Rotate(0.5)

	for i := 0; i < 2; i++ {
		e := p.At(i)
		want := math.Mod(e.RotationSpeed*0.5, 2*math.Pi)
		if math.Abs(e.Rotation-want) > 1e-12 {
			t.Errorf("Entity %d: expected rotation %v, got %v", i, want, e.Rotation)
		}
	}
	if p.At(3).Rotation != 0 {
		t.Errorf("Expected inactive entity rotation untouched")
	}
}

func TestSpawnWaveDoesNotAllocate(t *testing.T) {
	rng := vmath.NewFastRand(13)
	p := New(KindObstacle, 50, rng)
	place := obstaclePlacement()
	allocs := testing.AllocsPerRun(20, func() {
		p.SpawnWave(40, place, linePath{}, rng)
	})
	if allocs != 0 {
		t.Errorf("Expected zero allocations per wave, got %v", allocs)
	}
}
