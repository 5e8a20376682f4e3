// Package solver provides multivariate root-finders for the residual
// functions assembled by the equilib package.
//
// Two implementations of [RootFinder] are available:
//
//   - [LevenbergMarquardt]: damped Gauss-Newton, the default. Tolerant
//     of poor starting points and of near-singular Jacobians.
//   - [Newton]: undamped direction with a backtracking line search.
//     Faster near a root, less forgiving far from one.
//
// Both differentiate the residual numerically, so any pure function of
// the form f(x) []float64 can be solved.
package solver
