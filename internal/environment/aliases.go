package environment

import (
	"sort"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/canonical"
)

// AliasNode is one local type alias awaiting cycle analysis: its
// name, type parameters, declaration region and raw body.
type AliasNode struct {
	Name   string
	Vars   []string
	Region ast.Region
	Type   ast.Type
}

// resolveAliases installs the module's own type aliases into the
// environment. Aliases are macro-like substitutions, so any expansion
// cycle is rejected: a self-loop as SelfRecursiveAliasError, a larger
// strongly connected component as MutuallyRecursiveAliasesError.
// Acyclic aliases are canonicalized in dependency order, so an alias
// body may freely reference aliases it depends on.
func resolveAliases(home canonical.ModuleName, nodes []*AliasNode, env *Env) error {
	index := make(map[string]int, len(nodes))
	for i, node := range nodes {
		index[node.Name] = i
	}

	adjacency := make([][]int, len(nodes))
	for i, node := range nodes {
		adjacency[i] = localRefs(node.Type, index)
	}

	for _, component := range stronglyConnected(adjacency) {
		if len(component) == 0 {
			continue
		}
		if len(component) > 1 {
			sort.Ints(component)
			members := make([]*AliasNode, len(component))
			for i, nodeIdx := range component {
				members[i] = nodes[nodeIdx]
			}
			return &MutuallyRecursiveAliasesError{Aliases: members}
		}

		nodeIdx := component[0]
		node := nodes[nodeIdx]
		if hasEdge(adjacency[nodeIdx], nodeIdx) {
			return &SelfRecursiveAliasError{
				Region: node.Region,
				Name:   node.Name,
				Vars:   node.Vars,
				Type:   node.Type,
			}
		}

		canonicalized, err := canonicalizeType(home, env, node.Region, node.Type)
		if err != nil {
			return err
		}
		env.apply(&AliasPatch{
			Name:      node.Name,
			Canonical: canonical.Name{Module: home, Ident: node.Name},
			Vars:      node.Vars,
			Type:      canonicalized,
		})
	}
	return nil
}

// localRefs finds the alias-node indices a type body references.
// Type variables are a separate AST variant and imported names are
// qualified or absent from the index, so neither produces an edge.
func localRefs(t ast.Type, index map[string]int) []int {
	var refs []int
	seen := make(map[int]bool)
	collectLocalRefs(t, index, seen, &refs)
	return refs
}

func collectLocalRefs(t ast.Type, index map[string]int, seen map[int]bool, refs *[]int) {
	switch ty := t.(type) {
	case *ast.TCon:
		if ty.Module == "" {
			if i, ok := index[ty.Name]; ok && !seen[i] {
				seen[i] = true
				*refs = append(*refs, i)
			}
		}
		for _, arg := range ty.Args {
			collectLocalRefs(arg, index, seen, refs)
		}
	case *ast.TLambda:
		collectLocalRefs(ty.Arg, index, seen, refs)
		collectLocalRefs(ty.Result, index, seen, refs)
	case *ast.TRecord:
		for _, field := range ty.Fields {
			collectLocalRefs(field.Type, index, seen, refs)
		}
	case *ast.TTuple:
		for _, item := range ty.Items {
			collectLocalRefs(item, index, seen, refs)
		}
	}
}

func hasEdge(edges []int, target int) bool {
	for _, e := range edges {
		if e == target {
			return true
		}
	}
	return false
}

// canonicalizeType resolves a source type expression against the
// environment. Alias references expand in place via substitution;
// union and builtin references become canonical constructors. The
// first candidate wins here; ambiguity reporting belongs to the
// expression canonicalizer.
func canonicalizeType(home canonical.ModuleName, env *Env, region ast.Region, t ast.Type) (canonical.Type, error) {
	switch ty := t.(type) {
	case *ast.TVar:
		return &canonical.TVar{Name: ty.Name}, nil
	case *ast.TUnit:
		return &canonical.TUnit{}, nil
	case *ast.TLambda:
		arg, err := canonicalizeType(home, env, region, ty.Arg)
		if err != nil {
			return nil, err
		}
		result, err := canonicalizeType(home, env, region, ty.Result)
		if err != nil {
			return nil, err
		}
		return &canonical.TLambda{Arg: arg, Result: result}, nil
	case *ast.TTuple:
		items := make([]canonical.Type, len(ty.Items))
		for i, item := range ty.Items {
			canonicalized, err := canonicalizeType(home, env, region, item)
			if err != nil {
				return nil, err
			}
			items[i] = canonicalized
		}
		return &canonical.TTuple{Items: items}, nil
	case *ast.TRecord:
		fields := make([]canonical.Field, len(ty.Fields))
		for i, field := range ty.Fields {
			canonicalized, err := canonicalizeType(home, env, region, field.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = canonical.Field{Name: field.Name, Type: canonicalized}
		}
		return &canonical.TRecord{Fields: fields, Extension: ty.Extension}, nil
	case *ast.TCon:
		return canonicalizeCon(home, env, region, ty)
	}
	return nil, nil
}

func canonicalizeCon(home canonical.ModuleName, env *Env, region ast.Region, con *ast.TCon) (canonical.Type, error) {
	args := make([]canonical.Type, len(con.Args))
	for i, arg := range con.Args {
		canonicalized, err := canonicalizeType(home, env, region, arg)
		if err != nil {
			return nil, err
		}
		args[i] = canonicalized
	}

	key := con.Name
	if con.Module != "" {
		key = con.Module + "." + con.Name
	}

	if infos := env.Aliases[key]; len(infos) > 0 {
		info := infos[0]
		subst := make(map[string]canonical.Type, len(info.Vars))
		for i, v := range info.Vars {
			if i < len(args) {
				subst[v] = args[i]
			}
		}
		return &canonical.TAlias{
			Name:   info.Name,
			Args:   args,
			Actual: canonical.Substitute(info.Type, subst),
		}, nil
	}
	if names := env.Unions[key]; len(names) > 0 {
		return &canonical.TCon{Name: names[0], Args: args}, nil
	}

	pool := make([]string, 0, len(env.Unions)+len(env.Aliases))
	for name := range env.Unions {
		pool = append(pool, name)
	}
	for name := range env.Aliases {
		pool = append(pool, name)
	}
	sort.Strings(pool)
	return nil, &ValueNotFoundError{
		Region:      region,
		Name:        key,
		Module:      home.String(),
		Suggestions: nearbyNames(key, pool),
	}
}

// stronglyConnected is Tarjan's algorithm over a dense index-based
// adjacency list. Components come out with dependencies before
// dependents, which is exactly the order aliases must resolve in.
func stronglyConnected(adjacency [][]int) [][]int {
	n := len(adjacency)
	const unvisited = -1

	number := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range number {
		number[i] = unvisited
	}

	var (
		counter    int
		stack      []int
		components [][]int
		visit      func(v int)
	)
	visit = func(v int) {
		number[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adjacency[v] {
			if number[w] == unvisited {
				visit(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && number[w] < lowlink[v] {
				lowlink[v] = number[w]
			}
		}

		if lowlink[v] == number[v] {
			var component []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			components = append(components, component)
		}
	}

	for v := 0; v < n; v++ {
		if number[v] == unvisited {
			visit(v)
		}
	}
	return components
}
