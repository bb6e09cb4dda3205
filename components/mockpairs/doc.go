// Package mockpairs provides a small net/http handler that stands in for the
// remote location-pairing service. It answers POST requests carrying a
// SearchRequest with canned pairs filtered by the requested location types,
// or with a configured failure.
//
// The default data set is embedded under data/sample_pairs.json.
package mockpairs
