package common

import "fmt"

// GeneratedHeader returns the line-comment banner placed at the top of every
// generated source. It only depends on the build version, so output stays
// byte-identical between runs of the same binary.
func GeneratedHeader(commentPrefix string) (string, error) {
	version, err := GetVersion()
	if err != nil {
		return "", fmt.Errorf("get version: %w", err)
	}
	return fmt.Sprintf("%s Code generated by fwgen %s. DO NOT EDIT.\n", commentPrefix, version), nil
}
