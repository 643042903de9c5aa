package passport

import (
	"fmt"

	"github.com/awmpietro/puzzle-solvers/internal/rules/eval"
)

// RequiredKeys are the fields every rule-set checks. cid is deliberately absent.
var RequiredKeys = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

// Definition binds a required field to a predicate over its value.
type Definition struct {
	Key       string
	Predicate string
}

const presentPredicate = `value != ""`

var fullPredicates = map[string]string{
	"byr": `value matches "^[0-9]{4}$" && int(value) in 1920..2002`,
	"iyr": `value matches "^[0-9]{4}$" && int(value) in 2010..2020`,
	"eyr": `value matches "^[0-9]{4}$" && int(value) in 2020..2030`,
	"hgt": `(value matches "^[0-9]+cm$" && int(trimSuffix(value, "cm")) in 150..193) || ` +
		`(value matches "^[0-9]+in$" && int(trimSuffix(value, "in")) in 59..76)`,
	"hcl": `value matches "^#[0-9a-f]{6}$"`,
	"ecl": `value in ["amb", "blu", "brn", "gry", "grn", "hzl", "oth"]`,
	"pid": `value matches "^[0-9]{9}$"`,
}

type Cache interface {
	GetOrCompute(src string, fn func() (*eval.Compiled, error)) (*eval.Compiled, error)
}

type rule struct {
	key  string
	pred *eval.Compiled
}

// RuleSet is an ordered list of required keys, each with a compiled predicate.
type RuleSet struct {
	Name  string
	rules []rule
}

func PresenceDefinitions() []Definition {
	defs := make([]Definition, 0, len(RequiredKeys))
	for _, key := range RequiredKeys {
		defs = append(defs, Definition{Key: key, Predicate: presentPredicate})
	}
	return defs
}

func FullDefinitions() []Definition {
	defs := make([]Definition, 0, len(RequiredKeys))
	for _, key := range RequiredKeys {
		defs = append(defs, Definition{Key: key, Predicate: fullPredicates[key]})
	}
	return defs
}

func PresenceRules(c Cache) (*RuleSet, error) {
	return Compile("simple", PresenceDefinitions(), c)
}

func FullRules(c Cache) (*RuleSet, error) {
	return Compile("full", FullDefinitions(), c)
}

// Compile builds a rule-set. A nil cache compiles every predicate afresh.
func Compile(name string, defs []Definition, c Cache) (*RuleSet, error) {
	rs := &RuleSet{Name: name, rules: make([]rule, 0, len(defs))}
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("rule-set %s: empty key", name)
		}
		if _, ok := seen[def.Key]; ok {
			return nil, fmt.Errorf("rule-set %s: key %q defined twice", name, def.Key)
		}
		seen[def.Key] = struct{}{}

		pred, err := compile(def.Predicate, c)
		if err != nil {
			return nil, fmt.Errorf("rule-set %s: invalid predicate for %q: %w", name, def.Key, err)
		}
		rs.rules = append(rs.rules, rule{key: def.Key, pred: pred})
	}

	return rs, nil
}

func compile(src string, c Cache) (*eval.Compiled, error) {
	if c == nil {
		return eval.Compile(src)
	}
	return c.GetOrCompute(src, func() (*eval.Compiled, error) {
		return eval.Compile(src)
	})
}

func (rs *RuleSet) Keys() []string {
	keys := make([]string, 0, len(rs.rules))
	for _, r := range rs.rules {
		keys = append(keys, r.key)
	}
	return keys
}

// Valid reports whether every required key is present and passes its predicate.
// A predicate that fails to evaluate counts as not passing.
func (rs *RuleSet) Valid(rec Record) bool {
	for _, r := range rs.rules {
		value, ok := rec[r.key]
		if !ok {
			return false
		}
		pass, err := r.pred.Eval(value)
		if err != nil || !pass {
			return false
		}
	}
	return true
}

func CountValid(records []Record, rs *RuleSet) int {
	n := 0
	for _, rec := range records {
		if rs.Valid(rec) {
			n++
		}
	}
	return n
}
