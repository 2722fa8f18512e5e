package game

import "fmt"

// Strategy selects how the vehicle advances on each step.
type Strategy uint8

const (
	Manual     Strategy = iota // held direction keys
	WallFollow                 // right-hand wall follower
	AutoSolve                  // precomputed shortest path
)

var strategyNames = map[Strategy]string{
	Manual:     "manual",
	WallFollow: "wall_follow",
	AutoSolve:  "auto_solve",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy maps a name such as "wall_follow" to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
