//go:build chirpdebug

package chirp

func assertValid(err error) {
	if err != nil {
		panic(err)
	}
}
