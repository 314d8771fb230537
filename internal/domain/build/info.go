// Package build provides domain entities for build information.
package build

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// LayoutVersion returns the layout document version this build writes.
func (Info) LayoutVersion() string {
	return fmt.Sprintf("%d.%d.%d", entity.LayoutVersionMajor, entity.LayoutVersionMinor, entity.LayoutVersionPatch)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dockyard"
}
