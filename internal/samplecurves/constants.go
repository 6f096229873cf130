package samplecurves

// Extensions the plotter recognises.
var Extensions = []string{"txt", "dat", "csv", "lbol"}

// Header is written as the first line of every file.
const Header = "# time L_ubvri L_bol XEUV<325 IR>890"

const (
	defaultCount  = 5
	defaultPoints = 120
	minPoints     = 2

	directoryPermission = 0o750
	filePermission      = 0o640
)

// Curve shape ranges, in days and log10 erg/s.
const (
	peakMin, peakRange         = 41.8, 0.8
	riseMin, riseRange         = 5.0, 10.0
	plateauMin, plateauRange   = 30.0, 40.0
	dropMin, dropRange         = 10.0, 15.0
	dropDexMin, dropDexRange   = 0.8, 0.7
	plateauDecline             = 0.3
	riseDepth                  = 1.5
	tailSlope                  = 0.00392 // 56Co decay, 0.98 mag per 100 days
	tailDays                   = 100.0
	noiseSigma                 = 0.02
	bolOffsetMin, bolOffsetMax = 0.1, 0.2
)
