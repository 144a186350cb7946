package kernelgen

import (
	"fmt"
	"strings"
)

// Comparator is the relational operator a multi-threaded select uses to
// partition the index domain into buckets.
type Comparator string

const (
	Less         Comparator = "<"
	LessEqual    Comparator = "<="
	Greater      Comparator = ">"
	GreaterEqual Comparator = ">="
	Equal        Comparator = "=="
)

// inverse returns the comparator whose half-line is the exact complement
// of cmp's, so adjacent buckets meet without gaps or overlaps. Equality is
// its own inverse.
func (cmp Comparator) inverse() Comparator {
	switch cmp {
	case Less:
		return GreaterEqual
	case LessEqual:
		return Greater
	case Greater:
		return LessEqual
	case GreaterEqual:
		return Less
	default:
		return cmp
	}
}

func (cmp Comparator) valid() bool {
	switch cmp {
	case Less, LessEqual, Greater, GreaterEqual, Equal:
		return true
	}
	return false
}

// DestType describes how a selection destination is declared: not at all,
// with a simple type, or with a wrapper split around the variable name.
type DestType struct {
	kind           destTypeKind
	name           string
	prefix, suffix string
}

type destTypeKind int

const (
	destNone destTypeKind = iota
	destSimple
	destWrapped
)

// NoType marks a destination that is assigned without being declared.
func NoType() DestType {
	return DestType{kind: destNone}
}

// SimpleType declares the destination as "<name> <var>".
func SimpleType(name string) DestType {
	return DestType{kind: destSimple, name: name}
}

// WrappedType declares the destination as "<prefix><var><suffix>", for
// declarations where the type syntax surrounds the variable name, such as
// the reference-to-array form WrappedType("T (&", ")[36]").
func WrappedType(prefix, suffix string) DestType {
	return DestType{kind: destWrapped, prefix: prefix, suffix: suffix}
}

// decl renders the declaration (or bare reference) of varName.
func (t DestType) decl(varName string) string {
	switch t.kind {
	case destSimple:
		return t.name + " " + varName
	case destWrapped:
		return t.prefix + varName + t.suffix
	default:
		return varName
	}
}

// Selection binds one destination variable to its per-bucket candidate
// expressions, one candidate per bucket.
type Selection struct {
	Type       DestType
	Var        string
	Candidates []string
}

// MultiThreadedSelect emits code that assigns each destination the
// candidate expression of the bucket loopCounter falls in. With more than
// one destination it emits an if/else-if chain whose final arm is
// unconditional; with a single destination, or when forceBranchless is
// set, it emits one branch-free sum of indicator*candidate products per
// destination, relying on bool-to-int coercion in the generated code.
//
// The bucket count N is the candidate-list length, shared by every
// destination. Relational comparators partition the index line at N-1
// boundary thresholds, supplied in the monotonic order implied by cmp
// (ascending for < and <=, descending for > and >=); Equal selects among
// N exact-match keys, which must be pairwise distinct. Threshold
// expressions are not evaluable at generation time, so ordering and
// distinctness are caller obligations; shape mismatches are rejected
// before anything is emitted.
func (b *Builder) MultiThreadedSelect(loopCounter string, cmp Comparator,
	thresholds []string, sels []Selection, forceBranchless bool) error {

	if !cmp.valid() {
		return fmt.Errorf("invalid selection: unknown comparator %q", string(cmp))
	}
	if len(sels) == 0 {
		return fmt.Errorf("invalid selection: no destinations supplied")
	}
	n := len(sels[0].Candidates)
	if n == 0 {
		return fmt.Errorf("invalid selection: destination %q has no candidates", sels[0].Var)
	}
	for _, sel := range sels {
		if sel.Var == "" {
			return fmt.Errorf("invalid selection: destination with empty variable name")
		}
		if len(sel.Candidates) != n {
			return fmt.Errorf("invalid selection: destination %q has %d candidates, destination %q has %d",
				sels[0].Var, n, sel.Var, len(sel.Candidates))
		}
	}
	want := n - 1 // boundaries between contiguous buckets
	if cmp == Equal {
		want = n // one exact-match key per bucket
	}
	if len(thresholds) != want {
		return fmt.Errorf("invalid selection: %d thresholds for %d candidates, comparator %q needs %d",
			len(thresholds), n, string(cmp), want)
	}

	// One bucket needs no selector at all.
	if n == 1 {
		for _, sel := range sels {
			b.AddLine(sel.Type.decl(sel.Var) + " = " + sel.Candidates[0] + ";")
		}
		return nil
	}

	if len(sels) > 1 && !forceBranchless {
		b.branchSelect(loopCounter, cmp, thresholds, sels)
	} else {
		b.branchlessSelect(loopCounter, cmp, thresholds, sels)
	}
	return nil
}

// branchSelect declares all destinations up front, then emits an
// if/else-if chain with one arm per bucket, the last arm unconditional.
func (b *Builder) branchSelect(loopCounter string, cmp Comparator,
	thresholds []string, sels []Selection) {

	b.AddLine("// branch to get pointer locations")
	decls := make([]string, len(sels))
	for i, sel := range sels {
		decls[i] = sel.Type.decl(sel.Var)
	}
	b.AddLine(strings.Join(decls, "; ") + ";")

	n := len(sels[0].Candidates)
	for ind := 0; ind < n; ind++ {
		var arm string
		switch {
		case ind == 0:
			arm = "     if (" + loopCounter + " " + string(cmp) + " " + thresholds[ind] + "){ "
		case ind < n-1:
			arm = "else if (" + loopCounter + " " + string(cmp) + " " + thresholds[ind] + "){ "
		default:
			arm = "else              { "
		}
		var body strings.Builder
		for _, sel := range sels {
			body.WriteString(sel.Var + " = " + sel.Candidates[ind] + "; ")
		}
		b.AddLine(arm + body.String() + "}")
	}
}

// branchlessSelect emits, per destination, a single assignment whose right
// side sums indicator*candidate over all buckets. Relational indicators
// pair cmp with its inverse to form contiguous half-open intervals;
// equality indicators are independent exact-match terms.
func (b *Builder) branchlessSelect(loopCounter string, cmp Comparator,
	thresholds []string, sels []Selection) {

	b.AddLine("// non-branching pointer selector")
	n := len(sels[0].Candidates)
	inv := cmp.inverse()
	for _, sel := range sels {
		var expr strings.Builder
		for ind := 0; ind < n; ind++ {
			var indicator string
			switch {
			case cmp == Equal:
				indicator = "(" + loopCounter + " == " + thresholds[ind] + ")"
			case ind == 0:
				indicator = "(" + loopCounter + " " + string(cmp) + " " + thresholds[ind] + ")"
			case ind < n-1:
				indicator = "(" + loopCounter + " " + string(cmp) + " " + thresholds[ind] +
					" && " + loopCounter + " " + string(inv) + " " + thresholds[ind-1] + ")"
			default:
				indicator = "(" + loopCounter + " " + string(inv) + " " + thresholds[ind-1] + ")"
			}
			if ind > 0 {
				expr.WriteString(" + ")
			}
			expr.WriteString(indicator + " * " + sel.Candidates[ind])
		}
		b.AddLine(sel.Type.decl(sel.Var) + " = " + expr.String() + ";")
	}
}

// VarInList returns a predicate expression that is true when varName
// equals any of the options.
func VarInList(varName string, options []string) string {
	if len(options) == 1 {
		return "(" + varName + " == " + options[0] + ")"
	}
	terms := make([]string, len(options))
	for i, opt := range options {
		terms[i] = "(" + varName + " == " + opt + ")"
	}
	return "(" + strings.Join(terms, " || ") + ")"
}

// VarNotInList returns a predicate expression that is true when varName
// equals none of the options.
func VarNotInList(varName string, options []string) string {
	if len(options) == 1 {
		return "(" + varName + " != " + options[0] + ")"
	}
	terms := make([]string, len(options))
	for i, opt := range options {
		terms[i] = "(" + varName + " != " + opt + ")"
	}
	return "(" + strings.Join(terms, " && ") + ")"
}
