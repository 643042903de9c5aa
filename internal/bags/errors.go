package bags

import "errors"

var (
	// ErrMalformedRule indicates a line that is not a "<name> bags contain <contents>." rule.
	ErrMalformedRule = errors.New("bags: malformed rule")
	// ErrUnknownBag indicates a contained bag that has no rule of its own.
	ErrUnknownBag = errors.New("bags: unknown bag")
	// ErrDuplicateBag indicates two rules for the same bag.
	ErrDuplicateBag = errors.New("bags: duplicate bag")
	// ErrCycle indicates a bag that ends up containing itself.
	ErrCycle = errors.New("bags: containment cycle")
)
