//go:build !linux

package system

func controllingTerminal() (string, error) {
	return "", errNoSession
}
