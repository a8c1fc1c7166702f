//go:build !chirpdebug

package chirp

func assertValid(error) {}
