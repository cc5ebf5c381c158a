// Package depgraph implements the DependencyGraph: the in-memory
// fine-grained dependency graph that integrates per-input summaries
// produced by the frontend and computes, wave by wave, the set of inputs
// that must be recompiled.
package depgraph

import "fmt"

// Aspect distinguishes a dependency's effect on its dependents. A change to
// an interface-aspect entity can ripple to every user; a change to the
// implementation-aspect of the same entity affects only the owning input.
type Aspect int

const (
	AspectInterface Aspect = iota
	AspectImplementation
)

func (a Aspect) String() string {
	switch a {
	case AspectInterface:
		return "interface"
	case AspectImplementation:
		return "implementation"
	default:
		return "unknown-aspect"
	}
}

// DesignatorKind enumerates the per-language node kinds a DependencyKey can
// name, plus the externalDepend variant for dependencies on entities the
// frontend cannot see the definition of (standard library, other modules).
type DesignatorKind int

const (
	DesigTopLevel DesignatorKind = iota
	DesigNominal
	DesigMember
	DesigPotentialMember
	DesigExternalDepend
)

func (k DesignatorKind) String() string {
	switch k {
	case DesigTopLevel:
		return "topLevel"
	case DesigNominal:
		return "nominal"
	case DesigMember:
		return "member"
	case DesigPotentialMember:
		return "potentialMember"
	case DesigExternalDepend:
		return "externalDepend"
	default:
		return "unknown-designator"
	}
}

// Designator names one dependency entity. Holder is the enclosing nominal
// type's name; it is empty for topLevel and externalDepend designators and
// populated for member/potentialMember designators.
type Designator struct {
	Kind   DesignatorKind
	Holder string
	Name   string
}

func (d Designator) String() string {
	if d.Holder == "" {
		return fmt.Sprintf("%s(%s)", d.Kind, d.Name)
	}
	return fmt.Sprintf("%s(%s.%s)", d.Kind, d.Holder, d.Name)
}

// ExternalDepend builds the designator for a dependency on an external
// entity named name, e.g. a standard-library symbol the frontend cannot
// itself define a node for.
func ExternalDepend(name string) Designator {
	return Designator{Kind: DesigExternalDepend, Name: name}
}

// DependencyKey is the addressable unit of the graph: an aspect of one
// designated entity. Two nodes with equal keys and equal owning inputs are
// the same node by construction — DependencyKey is comparable and is used
// directly as a map key throughout this package.
type DependencyKey struct {
	Aspect     Aspect
	Designator Designator
}

func (k DependencyKey) String() string {
	return fmt.Sprintf("%s:%s", k.Aspect, k.Designator)
}

// IsExternal reports whether this key names an externalDepend designator.
func (k DependencyKey) IsExternal() bool {
	return k.Designator.Kind == DesigExternalDepend
}
