package game

import (
	"math"

	"github.com/lixenwraith/hyperspace/input"
	"github.com/lixenwraith/hyperspace/track"
	"github.com/lixenwraith/hyperspace/vmath"
)

// integrateMovement applies held-direction acceleration, damping and the radial clamp
func (s *Session) integrateMovement(delta float64, in input.State) {
	accel := s.run.MoveSpeed * delta * s.cfg.Player.AccelerationScale
	v := &s.player.Velocity

	if in.Left {
		v.X -= accel
	}
	if in.Right {
		v.X += accel
	}
	if in.Up {
		v.Y += accel
	}
	if in.Down {
		v.Y -= accel
	}

	*v = vmath.V2FScale(*v, s.cfg.Player.Damping)

	s.player.Offset = vmath.V2FAdd(s.player.Offset, vmath.V2FScale(*v, delta))
	s.player.Offset = vmath.V2FClampMagnitude(s.player.Offset, s.cfg.Tunnel.MaxOffset)
}

// pathParameter maps elapsed simulated time onto the loop
func (s *Session) pathParameter() float64 {
	loop := s.cfg.Loop.Duration
	return math.Mod(s.run.ElapsedTime*s.cfg.Loop.PathTimeScale, loop) / loop
}

// updatePlayerWorld derives position and the local frame from the path parameter and offset
func (s *Session) updatePlayerWorld() {
	p := s.pathParameter()
	frame := track.FrameAt(s.path, p, s.cfg.Loop.ForwardEpsilon, vmath.WorldUp)

	s.player.PathParameter = p
	s.player.Forward = frame.Forward
	s.player.Right = frame.Right
	s.player.Up = frame.Up

	pos := vmath.V3FAddScaled(frame.Position, frame.Right, s.player.Offset.X)
	s.player.Position = vmath.V3FAddScaled(pos, frame.Up, s.player.Offset.Y)
}
