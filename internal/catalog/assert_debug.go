//go:build chirpdebug

package catalog

func assertValid(err error) {
	if err != nil {
		panic(err)
	}
}
