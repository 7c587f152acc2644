package domain

// Option keys recognized by the engine. Unknown keys passed to Set or With
// are accepted and stored but have no effect on hashing behavior.
const (
	OptHasher   = "hasher"
	OptHashKey  = "hashKey"
	OptLength   = "length"
	OptReplace  = "replace"
	OptManifest = "manifest"
	OptBase     = "base"
	OptPath     = "path"
	OptSave     = "save"
	OptTemplate = "template"
)

// Options is the flat configuration consumed by the engine. Known options
// live in typed fields; anything else lands in an extension store reachable
// through Get and Set.
type Options struct {
	// Hasher names the digest algorithm.
	Hasher string
	// HashKey is the literal marker prefixed to every digest. It is what
	// distinguishes generated artifacts from originals.
	HashKey string
	// Length is the maximum number of digest characters retained.
	Length int
	// Replace deletes the original source once the artifact is written.
	Replace bool
	// Manifest is the manifest filename; empty disables persistence.
	Manifest string
	// Base is the root directory all recorded paths are relative to.
	Base string
	// Path is the directory the manifest file is written into.
	Path string
	// Save controls whether the artifact file is actually written.
	Save bool
	// Template renders the hashed filename from name, hash and ext.
	Template string

	extra map[string]any
}

// DefaultOptions returns the session defaults.
func DefaultOptions() Options {
	return Options{
		Hasher:   "sha1",
		HashKey:  "aH4urS",
		Length:   8,
		Manifest: "assets.json",
		Base:     ".",
		Path:     ".",
		Save:     true,
		Template: DefaultTemplate,
	}
}

// Set assigns a single option by key. Unknown keys are stored in the
// extension map. A boolean false for the manifest option disables
// persistence, mirroring the documented "false or empty" contract.
func (o *Options) Set(key string, value any) {
	switch key {
	case OptHasher:
		if s, ok := value.(string); ok {
			o.Hasher = s
		}
	case OptHashKey:
		if s, ok := value.(string); ok {
			o.HashKey = s
		}
	case OptLength:
		if n, ok := value.(int); ok {
			o.Length = n
		}
	case OptReplace:
		if b, ok := value.(bool); ok {
			o.Replace = b
		}
	case OptManifest:
		switch v := value.(type) {
		case string:
			o.Manifest = v
		case bool:
			if !v {
				o.Manifest = ""
			}
		}
	case OptBase:
		if s, ok := value.(string); ok {
			o.Base = s
		}
	case OptPath:
		if s, ok := value.(string); ok {
			o.Path = s
		}
	case OptSave:
		if b, ok := value.(bool); ok {
			o.Save = b
		}
	case OptTemplate:
		if s, ok := value.(string); ok {
			o.Template = s
		}
	default:
		if o.extra == nil {
			o.extra = make(map[string]any)
		}
		o.extra[key] = value
	}
}

// Get returns the value of an option by key. Unknown keys that were never
// stored yield nil.
func (o Options) Get(key string) any {
	switch key {
	case OptHasher:
		return o.Hasher
	case OptHashKey:
		return o.HashKey
	case OptLength:
		return o.Length
	case OptReplace:
		return o.Replace
	case OptManifest:
		return o.Manifest
	case OptBase:
		return o.Base
	case OptPath:
		return o.Path
	case OptSave:
		return o.Save
	case OptTemplate:
		return o.Template
	default:
		return o.extra[key]
	}
}

// With returns a copy of the options with the overrides applied. The
// receiver is left untouched, so per-call overrides never leak into the
// session defaults.
func (o Options) With(overrides map[string]any) Options {
	merged := o
	if len(o.extra) > 0 {
		merged.extra = make(map[string]any, len(o.extra))
		for k, v := range o.extra {
			merged.extra[k] = v
		}
	} else {
		merged.extra = nil
	}
	for k, v := range overrides {
		merged.Set(k, v)
	}
	return merged
}
