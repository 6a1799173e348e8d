package physics

import "github.com/lixenwraith/pinball/vmath"

// DynamicBody is the ball: a spinless disc
type DynamicBody struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
}

// Params are the simulation-wide constants the ball update needs
type Params struct {
	Gravity    vmath.Vec2
	Bounciness float64
	// BumperScore is awarded per approaching hit on a collider with ImpactForce > 0
	BumperScore float64
	// SpinnerKickFactor converts approach speed into spinner angular velocity
	SpinnerKickFactor float64
}

// Sink receives the side effects of a ball update
type Sink interface {
	AddScore(points float64)
	AddDebugPoint(p vmath.Vec2)
	// Impact reports an approaching contact after it has been resolved
	// speed is the approach speed along the normal before the impulse
	Impact(c Collider, contact Contact, speed float64)
}

// Update integrates the ball over dt and resolves contacts against every
// collider in order. Returns the number of contacts found
func (b *DynamicBody) Update(dt float64, colliders []Collider, p *Params, sink Sink) int {
	b.integrate(dt, p.Gravity)

	contacts := 0
	for _, c := range colliders {
		contact, ok := c.Contact(b)
		if !ok {
			continue
		}
		contacts++

		if speed, hit := b.resolve(c, contact, p.Bounciness); hit {
			b.react(c, contact, speed, p, sink)
		}

		if sink != nil {
			sink.AddDebugPoint(contact.Point)
			sink.AddDebugPoint(contact.Normal.Mul(contact.Penetration).Add(b.Position))
		}
	}
	return contacts
}

// integrate applies v += g·dt; p += v·dt − ½·g·dt²
func (b *DynamicBody) integrate(dt float64, gravity vmath.Vec2) {
	b.Velocity = b.Velocity.Add(gravity.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt)).Sub(gravity.Mul(0.5 * dt * dt))
}

// resolve applies the restitution impulse and positional correction when the
// ball approaches the surface; a separating ball is left untouched
func (b *DynamicBody) resolve(c Collider, contact Contact, bounciness float64) (float64, bool) {
	relative := b.Velocity.Sub(SurfaceVelocity(c, contact))
	vn := relative.Dot(contact.Normal)
	if vn >= 0 {
		return 0, false
	}
	b.Velocity = b.Velocity.Sub(contact.Normal.Mul((1 + bounciness) * vn))
	b.Position = b.Position.Add(contact.Normal.Mul(contact.Penetration))
	return -vn, true
}

func (b *DynamicBody) react(c Collider, contact Contact, speed float64, p *Params, sink Sink) {
	if s, ok := c.(*Spinner); ok {
		s.Kick(contact.Normal, speed, p.SpinnerKickFactor)
	}
	if sink == nil {
		return
	}
	if ImpactForce(c) > 0 {
		sink.AddScore(p.BumperScore)
	}
	sink.Impact(c, contact, speed)
}
