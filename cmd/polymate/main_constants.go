package main

const (
	defaultProgress  = 1.0
	defaultFrames    = 0
	defaultPrecision = 2
	defaultScale     = 0.0
)
