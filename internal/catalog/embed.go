package catalog

import "embed"

// packFS contains the embedded descriptor packs, one YAML document per
// SaaS domain: advertising, documents, identity, projects, shipping.
//
//go:embed data/*.yaml
var packFS embed.FS
