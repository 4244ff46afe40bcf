/*
Package polyroots computes the roots of univariate polynomials of degree at most four
with the classical closed-form formulas (Cardano for cubics, Ferrari for quartics)
over any numeric type providing field arithmetic together with square and cube roots.

The solver lives in the roots package and is generic over the field.Field interface,
which is implemented for float32 and float64 (field.Real), complex128 (field.Complex)
and arbitrary precision complex numbers (field.BigComplex).
*/
package polyroots
