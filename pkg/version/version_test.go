package version_test

import (
	"runtime"
	"testing"

	"github.com/quantmind-br/grlibsrc/pkg/version"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	defer func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC }()

	version.Version = "1.2.3"
	version.BuildTime = "2026-10-01T00:00:00Z"
	version.Commit = "deadbeef"

	info := version.Get()

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t,
		"grlibsrc 1.2.3 (commit deadbeef, built 2026-10-01T00:00:00Z, "+runtime.Version()+" "+info.Platform+")",
		info.String())
}
