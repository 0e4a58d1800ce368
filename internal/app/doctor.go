package app

import (
	"fmt"

	"github.com/spf13/afero"
)

// CheckStatus is the outcome of a doctor check
type CheckStatus string

const (
	CheckOK   CheckStatus = "OK"
	CheckWarn CheckStatus = "WARN"
	CheckFail CheckStatus = "FAILED"
)

// Check is one doctor finding
type Check struct {
	Name   string
	Status CheckStatus
	Detail string
}

// Check inspects the project layout without resolving anything
func (o *Orchestrator) Check() []Check {
	var checks []Check

	if ok, _ := afero.DirExists(o.fs, o.root); !ok {
		checks = append(checks, Check{Name: "Project root", Status: CheckFail, Detail: o.root})
	} else {
		checks = append(checks, Check{Name: "Project root", Status: CheckOK, Detail: o.root})
	}

	for _, lib := range o.Libraries() {
		name := fmt.Sprintf("Library %s", lib.Name)
		dirs, err := o.resolver.Dirs(lib.Name, lib.Path)
		if err != nil {
			checks = append(checks, Check{Name: name, Status: CheckFail, Detail: err.Error()})
			continue
		}
		checks = append(checks, Check{Name: name, Status: CheckOK, Detail: fmt.Sprintf("%d directories", len(dirs))})
	}

	for env, path := range o.Environment() {
		name := fmt.Sprintf("Tool config (%s)", env)
		if ok, _ := afero.Exists(o.fs, path); ok {
			checks = append(checks, Check{Name: name, Status: CheckOK, Detail: path})
		} else {
			checks = append(checks, Check{Name: name, Status: CheckWarn, Detail: path + " not found"})
		}
	}

	return checks
}

// Healthy reports whether no check failed
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Status == CheckFail {
			return false
		}
	}
	return true
}
