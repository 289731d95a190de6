package design

import "math"

// Bound is an optional upper limit on a gain. The zero value means no
// bound; a present bound with a non-positive value also means no bound,
// matching firmware conventions where 0 disables the limit.
type Bound struct {
	Value float64
	Set   bool
}

// Limit returns a present bound.
func Limit(v float64) Bound {
	return Bound{Value: v, Set: true}
}

// NoLimit returns an absent bound.
func NoLimit() Bound {
	return Bound{}
}

// Active reports whether the bound actually constrains a gain.
func (b Bound) Active() bool {
	return b.Set && b.Value > 0
}

// Request describes one gain design problem. Inertia must be positive;
// FnDes is expected positive and ZetaDes non-negative.
type Request struct {
	Inertia float64 // J, kg·m²
	FnDes   float64 // desired natural frequency, Hz
	ZetaDes float64 // desired damping ratio
	KpMax   Bound
	KdMax   Bound
}

// Result holds the theoretical and the bound-respecting design for one
// request, plus derived time-domain metrics. Time metrics use +Inf as the
// "unbounded" sentinel; use Responds and Settles to branch on them.
type Result struct {
	Inertia float64 `json:"inertia"`
	FnDes   float64 `json:"fn_des"`
	ZetaDes float64 `json:"zeta_des"`
	KpMax   float64 `json:"kp_max"` // 0 when unbounded
	KdMax   float64 `json:"kd_max"` // 0 when unbounded

	OmegaNDes float64 `json:"omega_n_des"` // rad/s
	KpDes     float64 `json:"kp_des"`
	KdDes     float64 `json:"kd_des"`

	KpActual     float64 `json:"kp_actual"`
	KdActual     float64 `json:"kd_actual"`
	OmegaNActual float64 `json:"omega_n_actual"` // rad/s
	FnActual     float64 `json:"fn_actual"`      // Hz
	ZetaActual   float64 `json:"zeta_actual"`
	TrActual     float64 `json:"t_r_actual"` // s, +Inf if unbounded
	TsActual     float64 `json:"t_s_actual"` // s, +Inf if unbounded
}

// Limited reports whether a gain bound forced the design below the
// requested bandwidth.
func (r Result) Limited() bool {
	return r.KpActual < r.KpDes || r.KdActual < r.KdDes
}

// Responds reports whether the rise time is finite.
func (r Result) Responds() bool {
	return !math.IsInf(r.TrActual, 1)
}

// Settles reports whether the 2% settling time is finite.
func (r Result) Settles() bool {
	return !math.IsInf(r.TsActual, 1)
}
