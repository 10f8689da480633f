package pricing

import "math"

// olsModel is a one-feature least-squares fit: rate = intercept + slope*years.
type olsModel struct {
	intercept float64
	slope     float64
}

// fitOLS fits ordinary least squares over (x, y) pairs.
// slope = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)², intercept = ȳ - slope*x̄.
// A zero-variance feature yields slope 0 and intercept ȳ.
func fitOLS(xs, ys []float64) olsModel {
	n := float64(len(xs))
	if n == 0 {
		return olsModel{}
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var num, den float64
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return olsModel{intercept: meanY}
	}

	slope := num / den
	return olsModel{intercept: meanY - slope*meanX, slope: slope}
}

func (m olsModel) predict(x float64) float64 {
	return m.intercept + m.slope*x
}

// rSquared is the coefficient of determination, 1 - SSres/SStot.
// A constant target scores 1 when the fit is exact, 0 otherwise.
func rSquared(m olsModel, xs, ys []float64) float64 {
	var meanY float64
	for _, y := range ys {
		meanY += y
	}
	meanY /= float64(len(ys))

	var ssRes, ssTot float64
	for i := range ys {
		res := ys[i] - m.predict(xs[i])
		tot := ys[i] - meanY
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// rootMeanSquaredError is the RMSE of the fit over (x, y) pairs.
func rootMeanSquaredError(m olsModel, xs, ys []float64) float64 {
	var ssRes float64
	for i := range ys {
		res := ys[i] - m.predict(xs[i])
		ssRes += res * res
	}
	return math.Sqrt(ssRes / float64(len(ys)))
}

// percentile interpolates linearly between the two nearest ranks of a
// sorted ascending slice. q is in [0, 1].
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// sampleStd is the sample standard deviation (n-1 denominator).
// Fewer than two samples have no spread to estimate.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
