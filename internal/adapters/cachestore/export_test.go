// export_test.go exports private functions for white-box testing.
package cachestore

var (
	NewCache = newCache
	Encode   = encode
	Decode   = decode
)
