package semimath

import "errors"

// ErrUnsupportedOrder indicates a Fermi–Dirac order outside
// {MinusHalf, Half}.
var ErrUnsupportedOrder = errors.New("semimath: unsupported Fermi-Dirac order")
