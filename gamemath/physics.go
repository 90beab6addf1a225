// Package gamemath holds small numeric helpers shared by the physics and
// collision systems. It has no dependencies on ebitengine, donburi or resolv.
package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity integrates gravity over dt seconds and clamps the result to
// the maximum fall speed. Upward speed is never clamped.
func ApplyGravity(speedY, gravity, maxFall, dt float64) float64 {
	speedY += gravity * dt
	if maxFall > 0 && speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
