//go:build cgo

package compression

func getCGOStatus() bool { return true }
