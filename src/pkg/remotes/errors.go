package remotes

import "errors"

// ErrDataRetrieval marks any failure while querying or normalizing source records.
var ErrDataRetrieval = errors.New("data retrieval failed")

var errMissingColumn = errors.New("result is missing a required column")
