// Package tlgen generates source code from a parsed TL schema: one record
// per constructor, one union per abstract type and one request per function,
// all mapping to and from TDLib's tagged JSON objects.
//
// A run builds a Generation (metadata, variant groups, identifiers and
// diagnostics) and then hands it to a language Backend for rendering:
//
//	var buf bytes.Buffer
//	err := tlgen.Generate(&buf, schema.Definitions, tlgen.Options{
//	    Backend: golang.New(golang.Options{Package: "tdapi"}),
//	})
package tlgen

import (
	"bytes"
	"io"
	"strings"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
	"github.com/teranos/tlgen/tl"
)

// OpaquePolicy decides what happens to function results whose type has no
// constructors in the schema
type OpaquePolicy string

const (
	// OpaqueEmpty emits a union without variants; decoding it always
	// reports an unrecognized variant. The request stays fully typed.
	OpaqueEmpty OpaquePolicy = "empty"
	// OpaqueError treats the result as a schema inconsistency
	OpaqueError OpaquePolicy = "error"
)

// Options configure a run
type Options struct {
	// Backend renders the output; required
	Backend Backend
	// Header is written verbatim at the top of every file.
	// Empty uses DefaultHeader; use NoHeader to omit it.
	Header string
	// TDLibVersion, when set, is recorded in the generated files
	TDLibVersion string
	// OpaqueResults defaults to OpaqueEmpty
	OpaqueResults OpaquePolicy
}

// NoHeader disables the license header
const NoHeader = "\x00"

// Phase of a Generation; transitions are one-way
type Phase int

const (
	PhaseBuilding Phase = iota + 1
	PhaseEmitting
)

func (p Phase) String() string {
	if p == PhaseEmitting {
		return "emitting"
	}
	return "building"
}

// Field is a parameter with its resolved identifier and type
type Field struct {
	Param tl.Parameter
	Ident string
	Ref   TypeRef
}

// Generation is the per-run context handed to every emitter. Names are
// issued while Building; emitters only read them while Emitting.
type Generation struct {
	opts     Options
	backend  Backend
	meta     *Metadata
	groups   []*VariantGroup
	groupOf  map[string]*VariantGroup // constructor name -> group
	records  []*tl.Definition
	resolver *Resolver
	diags    Diagnostics
	fields   map[*tl.Definition][]Field
	results  map[*tl.Definition]TypeRef
	phase    Phase
	built    bool
	err      error
}

// NewGeneration prepares a run over defs. Nothing is resolved until Build.
func NewGeneration(defs []tl.Definition, opts Options) (*Generation, error) {
	if opts.Backend == nil {
		return nil, errors.AssertionFailedf("tlgen: Options.Backend is required")
	}
	switch opts.OpaqueResults {
	case "":
		opts.OpaqueResults = OpaqueEmpty
	case OpaqueEmpty, OpaqueError:
	default:
		return nil, errors.Newf("unknown opaque results policy %q", opts.OpaqueResults)
	}
	switch opts.Header {
	case "":
		opts.Header = DefaultHeader
	case NoHeader:
		opts.Header = ""
	}

	meta := NewMetadata(defs)
	return &Generation{
		opts:     opts,
		backend:  opts.Backend,
		meta:     meta,
		resolver: NewResolver(opts.Backend.Naming()),
		groupOf:  make(map[string]*VariantGroup),
		fields:   make(map[*tl.Definition][]Field),
		results:  make(map[*tl.Definition]TypeRef),
		phase:    PhaseBuilding,
	}, nil
}

// Build groups the schema, resolves every type reference and issues every
// identifier. It fails with all error diagnostics at once, or with the first
// identifier collision. Build runs at most once.
func (g *Generation) Build() error {
	if g.built || g.phase != PhaseBuilding {
		return errors.AssertionFailedf("tlgen: Build called twice")
	}
	g.built = true

	g.diags = append(g.diags, g.meta.Diagnostics()...)
	g.groups = g.meta.Groups()
	for _, group := range g.groups {
		for _, ctor := range group.Constructors {
			g.groupOf[ctor.Name] = group
			g.records = append(g.records, ctor)
		}
	}

	g.resolveResults()
	g.resolveParams()
	if err := g.diags.Err(); err != nil {
		return err
	}
	for _, d := range g.diags.Warnings() {
		logger.Warnw("Schema warning", "definition", d.Definition, "code", d.Code, "message", d.Message)
	}

	if err := g.declare(); err != nil {
		return err
	}

	g.phase = PhaseEmitting
	logger.Debugw("Generation built",
		"language", g.backend.Language(),
		"records", len(g.records),
		"unions", len(g.groups),
		"functions", len(g.meta.Functions()))
	return nil
}

// resolveResults maps function results, adding opaque groups for result
// types the schema never defines
func (g *Generation) resolveResults() {
	opaque := make(map[string]*VariantGroup)
	for _, fn := range g.meta.Functions() {
		if ref, ok := g.meta.ResultRef(fn); ok {
			g.results[fn] = ref
			continue
		}

		name := fn.Type.FullName()
		if fn.Type.GenericArg != nil || fn.Type.Bare || g.opts.OpaqueResults == OpaqueError {
			g.diags.add(SeverityError, CodeUnknownType, fn.Name, "result type %s has no constructors", fn.Type)
			continue
		}
		if _, ok := opaque[name]; !ok {
			group := &VariantGroup{Type: name, Opaque: true}
			opaque[name] = group
			g.groups = append(g.groups, group)
		}
		g.results[fn] = TypeRef{Kind: RefEnum, Name: name}
	}
}

func (g *Generation) resolveParams() {
	defs := append(append([]*tl.Definition(nil), g.records...), g.meta.Functions()...)
	for _, def := range defs {
		fields := make([]Field, 0, len(def.Params))
		for _, p := range def.Params {
			ref, ok := g.meta.Ref(p.Type)
			if !ok {
				g.diags.add(SeverityError, CodeUnknownType, def.Name,
					"parameter %s references unknown type %s", p.Name, p.Type)
				continue
			}
			fields = append(fields, Field{Param: p, Ref: ref})
		}
		g.fields[def] = fields
	}
}

// declare issues identifiers in a fixed order: records, unions with their
// helpers and variants, requests, then fields. Names without a schema
// namespace are declared first, so a namespaced name is the one qualified
// when both case to the same identifier.
func (g *Generation) declare() error {
	for _, namespaced := range []bool{false, true} {
		if err := g.declareTopLevel(namespaced); err != nil {
			return err
		}
	}

	defs := append(append([]*tl.Definition(nil), g.records...), g.meta.Functions()...)
	for _, def := range defs {
		owner := OwnerKey(def)
		fields := g.fields[def]
		for i := range fields {
			ident, err := g.resolver.Resolve(fields[i].Param.Name, ScopeField, owner)
			if err != nil {
				return errors.Wrapf(err, "definition %s", def.Name)
			}
			fields[i].Ident = ident
		}
	}
	return nil
}

func (g *Generation) declareTopLevel(namespaced bool) error {
	for _, rec := range g.records {
		if hasNamespace(rec.Name) != namespaced {
			continue
		}
		if _, err := g.resolver.Resolve(rec.Name, ScopeType, ""); err != nil {
			return err
		}
	}
	for _, group := range g.groups {
		if hasNamespace(group.Type) != namespaced {
			continue
		}
		if _, err := g.resolver.Resolve(group.Type, ScopeEnum, ""); err != nil {
			return err
		}
		if err := g.backend.DeclareGroup(g, group); err != nil {
			return err
		}
	}
	for _, fn := range g.meta.Functions() {
		if hasNamespace(fn.Name) != namespaced {
			continue
		}
		if _, err := g.resolver.Resolve(fn.Name, ScopeFunction, ""); err != nil {
			return err
		}
	}
	return nil
}

func hasNamespace(raw string) bool {
	return strings.Contains(raw, ".")
}

// Declare issues a backend-derived identifier; only valid while Building
func (g *Generation) Declare(raw, base string, scope Scope, owner string) (string, error) {
	if g.phase != PhaseBuilding {
		return "", errors.AssertionFailedf("tlgen: Declare(%q) called while %s", raw, g.phase)
	}
	return g.resolver.Derive(raw, base, scope, owner)
}

// Ident returns an identifier issued during Building. A name that was never
// issued is a generator bug; it is recorded and reported by Err.
func (g *Generation) Ident(raw string, scope Scope, owner string) string {
	ident, ok := g.resolver.Lookup(raw, scope, owner)
	if !ok {
		g.Fail(errors.AssertionFailedf("tlgen: no %s identifier issued for %q (owner %q)", scope, raw, owner))
		return raw
	}
	return ident
}

// TypeIdent returns the identifier of a record
func (g *Generation) TypeIdent(def *tl.Definition) string {
	return g.Ident(def.Name, ScopeType, "")
}

// EnumIdent returns the identifier of a union
func (g *Generation) EnumIdent(typeName string) string {
	return g.Ident(typeName, ScopeEnum, "")
}

// FunctionIdent returns the identifier of a request
func (g *Generation) FunctionIdent(def *tl.Definition) string {
	return g.Ident(def.Name, ScopeFunction, "")
}

// Fail records the first emitting error
func (g *Generation) Fail(err error) {
	if g.err == nil && err != nil {
		g.err = err
	}
}

// Err returns the first error recorded by Fail or Ident
func (g *Generation) Err() error {
	return g.err
}

// Phase returns the current phase
func (g *Generation) Phase() Phase {
	return g.phase
}

// Metadata returns the schema index
func (g *Generation) Metadata() *Metadata {
	return g.meta
}

// Groups returns every union to emit: regular groups in order of first
// appearance, then opaque groups
func (g *Generation) Groups() []*VariantGroup {
	return g.groups
}

// GroupOf returns the union a constructor belongs to
func (g *Generation) GroupOf(ctor *tl.Definition) *VariantGroup {
	return g.groupOf[ctor.Name]
}

// Records returns the emitted constructors in group order
func (g *Generation) Records() []*tl.Definition {
	return g.records
}

// Functions returns the requests in schema order
func (g *Generation) Functions() []*tl.Definition {
	return g.meta.Functions()
}

// Fields returns the resolved fields of a record or request
func (g *Generation) Fields(def *tl.Definition) []Field {
	return g.fields[def]
}

// Result returns the resolved result type of a request
func (g *Generation) Result(fn *tl.Definition) TypeRef {
	return g.results[fn]
}

// Diagnostics returns every diagnostic of the run
func (g *Generation) Diagnostics() Diagnostics {
	return g.diags
}

// Header returns the license header, possibly empty
func (g *Generation) Header() string {
	return normalizeHeader(g.opts.Header)
}

// TDLibVersion returns the TDLib version recorded in generated files
func (g *Generation) TDLibVersion() string {
	return g.opts.TDLibVersion
}

// Render asks the backend for a file holding units
func (g *Generation) Render(units []Unit, split bool) ([]byte, error) {
	if g.phase != PhaseEmitting {
		return nil, errors.AssertionFailedf("tlgen: emitting while %s", g.phase)
	}
	out, err := g.backend.Render(g, units, split)
	if err != nil {
		return nil, err
	}
	if err := g.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerKey identifies a definition as the owner of field identifiers
func OwnerKey(def *tl.Definition) string {
	return def.Category.String() + ":" + def.Name
}

// Generate writes a single file holding the types, enums and functions
// units. Nothing is written unless the whole run succeeds; write errors are
// returned unchanged.
func Generate(w io.Writer, defs []tl.Definition, opts Options) error {
	g, err := NewGeneration(defs, opts)
	if err != nil {
		return err
	}
	if err := g.Build(); err != nil {
		return err
	}
	out, err := g.Render(Units, false)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(out))
	return err
}

// GenerateUnits renders each unit into its own file, named after the unit
func GenerateUnits(defs []tl.Definition, opts Options) ([]File, error) {
	g, err := NewGeneration(defs, opts)
	if err != nil {
		return nil, err
	}
	if err := g.Build(); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(Units))
	for _, unit := range Units {
		out, err := g.Render([]Unit{unit}, true)
		if err != nil {
			return nil, errors.Wrapf(err, "render %s", unit)
		}
		files = append(files, File{
			Name:    unit.String() + "." + g.backend.FileExtension(),
			Unit:    unit,
			Content: out,
		})
	}
	return files, nil
}
