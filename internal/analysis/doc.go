// Package analysis looks for periodicity in recorded light curves.
//
// The disk's luminosity changes as hot inner particles swing towards and away
// from the observer, so the summed emissive brightness per frame carries the
// orbital periods of the inner edge:
//
//	spec := analysis.PowerSpectrum(result.Series("luminosity"), dt)
//	f := spec.Dominant()
package analysis
