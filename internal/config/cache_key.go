package config

import "fmt"

type CacheKeyStruct struct{}

// TestPaperKey returns the cache key for a test's candidate-facing paper.
func (r *CacheKeyStruct) TestPaperKey(testID int) string {
	return fmt.Sprintf("test:%d:paper", testID)
}

var CacheKey = &CacheKeyStruct{}
