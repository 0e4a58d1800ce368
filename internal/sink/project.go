package sink

import (
	"encoding/json"
	"io"

	"github.com/quantmind-br/grlibsrc/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the exported project description
type ProjectFile struct {
	Environment map[string]string `yaml:"environment,omitempty" json:"environment,omitempty"`
	Libraries   []ProjectLibrary  `yaml:"libraries" json:"libraries"`
}

// ProjectLibrary is one library of a ProjectFile
type ProjectLibrary struct {
	Name  string                `yaml:"name" json:"name"`
	Files []domain.Registration `yaml:"files" json:"files"`
}

// Project exports the resolved libraries as YAML or JSON
type Project struct {
	*Recorder
	format string
	env    map[string]string
}

// NewProject creates a Project emitter; format is FormatYAML or FormatJSON
func NewProject(format string, env map[string]string) *Project {
	return &Project{
		Recorder: NewRecorder(),
		format:   format,
		env:      env,
	}
}

// File builds the project description
func (p *Project) File() ProjectFile {
	pf := ProjectFile{
		Environment: p.env,
		Libraries:   make([]ProjectLibrary, 0, len(p.Libraries())),
	}
	for _, lib := range p.Libraries() {
		files := lib.Files()
		if files == nil {
			files = []domain.Registration{}
		}
		pf.Libraries = append(pf.Libraries, ProjectLibrary{Name: lib.Name(), Files: files})
	}
	return pf
}

// Flush writes the project description to w
func (p *Project) Flush(w io.Writer) error {
	pf := p.File()

	if p.format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pf)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pf); err != nil {
		return err
	}
	return enc.Close()
}
