package vcs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Latest is the pseudo-branch that resolves to the highest semver tag
// of a remote.
const Latest = "latest"

// ResolveLatest returns the remote's highest semver tag. Tags without a
// leading "v" are compared as if they had one but returned verbatim.
func ResolveLatest(ctx context.Context, v VCS, remote string) (string, error) {
	tags, err := v.Tags(ctx, remote)
	if err != nil {
		return "", err
	}

	var bestTag, bestVer string
	for _, tag := range tags {
		ver := tag
		if !strings.HasPrefix(ver, "v") {
			ver = "v" + ver
		}
		if !semver.IsValid(ver) {
			continue
		}
		if bestVer == "" || semver.Compare(ver, bestVer) > 0 {
			bestTag, bestVer = tag, ver
		}
	}
	if bestTag == "" {
		return "", fmt.Errorf("no semver tags in %s", remote)
	}
	return bestTag, nil
}
