// Package kernel provides the numeric building blocks of the spectral
// analysis pipeline:
//
//   - [Integrate], [IntegrateXY]: trapezoidal integration over an irregular grid
//   - [FitPolynomial], [EvaluatePolynomial]: least-squares polynomial fitting
//     via the normal equations
//   - [Gaussian], [Lorentzian]: peak line shapes
//
// All functions are pure and allocation-light; none of them retain their
// arguments.
package kernel
