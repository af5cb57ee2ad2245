// Package transform computes softmax and softargmax over numeric vectors.
//
// The package is the numeric core of softviz:
//
//   - [Vector]: ordered sequence of finite values
//   - [Config]: algorithm, temperature and max-subtraction flag
//   - [Result]: exponents, their sum, probabilities and output
//   - [Compute]: the pure transform
//
// # Example
//
//	res, err := transform.Compute(transform.Vector{1, 2, 3}, transform.Config{
//		Algorithm:   transform.Softargmax,
//		Temperature: 1,
//		SubtractMax: true,
//	})
//
// # Stabilization
//
// With SubtractMax set, max(values) is subtracted before exponentiating.
// The result is mathematically unchanged but large inputs no longer
// overflow to +Inf.
package transform
