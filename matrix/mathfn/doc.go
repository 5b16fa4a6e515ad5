// SPDX-License-Identifier: MIT

// Package mathfn evaluates analytic matrix functions by truncated power
// series over square matrices from the parent matrix package.
//
// What is mathfn?
//
//   - Exp, Log, the trigonometric family (Sin, Cos, Tan, Sec), the
//     hyperbolic family (Sinh, Cosh, Tanh) and their inverses (ArcSin,
//     ArcCos, ArcTan, ArSinh, ArCosh, ArTanh), each computed as a
//     truncated Taylor/Mercator series in the matrix argument.
//   - ScalarPow raises a positive real base to a matrix exponent via
//     exp(ln(base)·M).
//
// Usage contract:
//
//   - Every function takes (m, terms); terms <= 0 selects the documented
//     default (DefaultExpTerms for Exp, DefaultTrigTerms elsewhere).
//   - Convergence is the caller's responsibility: the series for Log,
//     ArcSin, ArTanh and friends converge only inside their scalar
//     convergence domains (for Log, spectrum of M-I inside the unit
//     disc; for the arc families, spectral radius of M below 1). The
//     functions evaluate the truncated sum regardless.
//   - Results inherit the argument's tolerance; failures surface as the
//     parent package's sentinel errors wrapped with the operation name.
package mathfn
