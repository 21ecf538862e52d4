// Package catalog loads the embedded descriptor packs into a finalized
// registry. The catalog is built once at startup and read-only
// thereafter.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harlowgray/lexica-api/internal/domain"
	"github.com/harlowgray/lexica-api/internal/registry"
)

// Catalog is the loaded descriptor set.
type Catalog struct {
	Registry *registry.Registry
	Version  string
	Domains  []string
}

// Options controls catalog loading.
type Options struct {
	// PackDir optionally names a directory of additional descriptor
	// packs merged on top of the embedded ones.
	PackDir string

	// StrictBackrefs turns backref audit violations into a load error.
	// The default is lax: the shipped packs are symmetric, but external
	// packs may declare backrefs their targets do not mirror yet, and
	// the audit is meant to report that, not to block startup.
	StrictBackrefs bool

	// Logger receives load progress and audit warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Load parses every descriptor pack, registers the descriptors,
// finalizes the registry, and runs the backref audit. Registration and
// finalization errors abort the load; audit violations are logged
// (or, in strict mode, returned as an error).
func Load(opts Options) (*Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	reg := registry.New()
	var domains []string

	entries, err := packFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded packs: %w", err)
	}

	for _, entry := range entries {
		data, err := packFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded pack %s: %w", entry.Name(), err)
		}

		pack, err := loadPack(reg, data)
		if err != nil {
			return nil, fmt.Errorf("embedded pack %s: %w", entry.Name(), err)
		}

		domains = append(domains, pack.Domain)
		log.Debug("descriptor pack loaded",
			"domain", pack.Domain,
			"nouns", len(pack.Nouns),
			"source", "embedded")
	}

	if opts.PackDir != "" {
		extra, err := loadPackDir(reg, opts.PackDir, log)
		if err != nil {
			return nil, err
		}
		domains = append(domains, extra...)
	}

	if err := reg.Finalize(); err != nil {
		return nil, fmt.Errorf("failed to finalize registry: %w", err)
	}

	violations := reg.AuditBackrefs()
	for _, v := range violations {
		log.Warn("backref audit violation",
			"noun", v.Noun,
			"relationship", v.Relationship,
			"backref", v.Backref,
			"reason", v.Reason)
	}
	if len(violations) > 0 && opts.StrictBackrefs {
		return nil, fmt.Errorf("%w: %d violation(s), first: %s",
			domain.ErrBackrefInconsistency, len(violations), violations[0])
	}

	sort.Strings(domains)
	log.Info("catalog loaded",
		"version", Version,
		"domains", len(domains),
		"nouns", reg.Len(),
		"backref_violations", len(violations))

	return &Catalog{
		Registry: reg,
		Version:  Version,
		Domains:  domains,
	}, nil
}

// loadPack parses and registers a single pack.
func loadPack(reg *registry.Registry, data []byte) (*Pack, error) {
	pack, err := ParsePack(data)
	if err != nil {
		return nil, err
	}
	if err := pack.register(reg); err != nil {
		return nil, err
	}
	return pack, nil
}

// loadPackDir merges every .yaml/.yml pack found in dir.
func loadPackDir(reg *registry.Registry, dir string, log *slog.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack directory %s: %w", dir, err)
	}

	var domains []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pack %s: %w", path, err)
		}

		pack, err := loadPack(reg, data)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", path, err)
		}

		domains = append(domains, pack.Domain)
		log.Debug("descriptor pack loaded",
			"domain", pack.Domain,
			"nouns", len(pack.Nouns),
			"source", path)
	}

	return domains, nil
}
