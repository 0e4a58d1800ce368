package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/grlibsrc/internal/domain"
	"github.com/quantmind-br/grlibsrc/internal/utils"
	"github.com/spf13/afero"
)

// ResolverOptions configures a Resolver. Zero values select the defaults.
type ResolverOptions struct {
	Fs             afero.Fs
	Logger         *utils.Logger
	DirList        string
	Manifests      []string // processed in order within each directory
	TechmapLibrary string
	TechmapDir     string
}

// Resolver turns library manifests into source file registrations
type Resolver struct {
	loader         *Loader
	logger         *utils.Logger
	dirList        string
	manifests      []string
	techmapLibrary string
	techmapDir     string
}

// NewResolver creates a resolver
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	if opts.DirList == "" {
		opts.DirList = DefaultDirList
	}
	if len(opts.Manifests) == 0 {
		opts.Manifests = DefaultManifests()
	}
	if opts.TechmapLibrary == "" {
		opts.TechmapLibrary = DefaultTechmapLibrary
	}
	if opts.TechmapDir == "" {
		opts.TechmapDir = DefaultTechmapDir
	}

	return &Resolver{
		loader:         NewLoader(opts.Fs),
		logger:         opts.Logger.WithComponent("resolver"),
		dirList:        opts.DirList,
		manifests:      opts.Manifests,
		techmapLibrary: opts.TechmapLibrary,
		techmapDir:     opts.TechmapDir,
	}
}

// Dirs returns the directory list of a library. The technology mapping
// library always gets the extra mapping directory appended, even when it is
// already listed.
func (r *Resolver) Dirs(name, root string) ([]string, error) {
	dirs, err := r.loader.ReadDirList(filepath.Join(root, r.dirList))
	if err != nil {
		return nil, err
	}
	if name == r.techmapLibrary {
		dirs = append(dirs, r.techmapDir)
	}
	return dirs, nil
}

// Plan computes the registrations of a library without touching any sink.
// Order is directory list order, then manifest order, then line order.
func (r *Resolver) Plan(name, root string) ([]domain.Registration, error) {
	log := r.logger.WithLibrary(name, root)

	dirs, err := r.Dirs(name, root)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("dirs", dirs).Msg("Read directory list")

	var regs []domain.Registration
	for _, dir := range dirs {
		for _, kind := range r.manifests {
			path := filepath.Join(root, dir, kind)
			entries, found, err := r.loader.ReadEntries(path)
			if err != nil {
				return nil, err
			}
			if !found {
				log.Debug().Str("manifest", path).Msg("No manifest")
				continue
			}

			for _, e := range entries {
				src := filepath.Join(root, dir, e.Name)
				ok, err := r.loader.Exists(src)
				if err != nil {
					return nil, err
				}
				if !ok {
					log.Debug().Str("file", src).Msg("Skipping missing source")
					continue
				}
				regs = append(regs, domain.Registration{Path: src, Revision: e.Revision()})
			}
		}
	}

	return regs, nil
}

// Resolve plans the library and hands it to sink: one CreateLibrary call,
// then one AddSourceFile call per registration in order. Nothing reaches
// the sink if planning fails.
func (r *Resolver) Resolve(name, root string, sink domain.LibrarySink) ([]domain.Registration, error) {
	regs, err := r.Plan(name, root)
	if err != nil {
		return nil, domain.NewLibraryError(name, root, err)
	}

	lib, err := sink.CreateLibrary(name)
	if err != nil {
		return nil, domain.NewLibraryError(name, root, fmt.Errorf("%w: %v", domain.ErrLibraryCreate, err))
	}

	for i, reg := range regs {
		if err := lib.AddSourceFile(reg.Path, reg.Revision); err != nil {
			return regs[:i], domain.NewLibraryError(name, root, fmt.Errorf("%w: %s: %v", domain.ErrRegister, reg.Path, err))
		}
	}

	r.logger.WithLibrary(name, root).Info().
		Int("files", len(regs)).
		Msg("Resolved library")

	return regs, nil
}
