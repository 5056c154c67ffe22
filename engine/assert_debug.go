//go:build debug

package engine

// DebugAsserts turns index/pool desynchronization into a panic
const DebugAsserts = true
