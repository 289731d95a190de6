// Package design computes feasible PD gains for a single rotary joint.
//
// Given a joint inertia, a desired closed-loop natural frequency, and a
// desired damping ratio, standard second-order pole placement gives
//
//	Kp = J·ωn²
//	Kd = 2·ζ·J·ωn
//
// Servo firmware typically caps both gains. Rather than clamping Kp and
// Kd independently (which silently changes the damping ratio), the
// synthesizer finds the largest bandwidth at which both gains, computed
// from that bandwidth with the original damping ratio, respect their
// bounds. Clamping therefore only ever trades response speed; the damping
// ratio is preserved by construction.
//
//	req := design.Request{Inertia: 0.0231825, FnDes: 12, ZetaDes: 1.5,
//		KpMax: design.Limit(500), KdMax: design.Limit(5)}
//	res, err := design.Synthesize(req)
//
// [Synthesize] is pure and allocation-light; it is safe to call from any
// number of goroutines with distinct requests.
package design
