package vc

import "errors"

// ErrNotForcedOnly is returned when Solve is called on an instance that
// still has an UNCONSTRAINED edge: the vertex-cover reduction only holds
// once every edge has been forced.
var ErrNotForcedOnly = errors.New("vc: instance has an unconstrained edge")
