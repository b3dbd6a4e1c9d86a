// Package model defines stable boundary types for callers that serialize
// measurement results.
//
// Shape identity (canonical descriptor bytes and CIDs) is unaffected by any
// projection. These structs are the only types intended for direct JSON
// serialization by consumers.
package model
