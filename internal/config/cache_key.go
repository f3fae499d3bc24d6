package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseRosterKey returns the cache key for a course's enrolled-student
// projection.
func (r *CacheKeyStruct) CourseRosterKey(courseID int64) string {
	return fmt.Sprintf("course:%d:roster", courseID)
}

var CacheKey = NewCacheKeyStruct()
