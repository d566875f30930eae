package strength

type CharacterClasses struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// ClassesOf treats anything outside [A-Za-z0-9], including spaces and
// non-ASCII letters, as a symbol.
func ClassesOf(password string) CharacterClasses {
	var c CharacterClasses

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Symbol = true
		}
	}

	return c
}

func (c CharacterClasses) Count() int {
	count := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			count++
		}
	}

	return count
}

func (c CharacterClasses) PoolSize() int {
	pool := 0

	if c.Lower {
		pool += 26
	}
	if c.Upper {
		pool += 26
	}
	if c.Digit {
		pool += 10
	}
	if c.Symbol {
		pool += 32
	}

	return pool
}

func CheckVariety(password string) Contribution {
	switch ClassesOf(password).Count() {
	case 4:
		return contribute(25, "Excellent mix of character types", Success)
	case 3:
		return contribute(15, "Good mix of character types", Success)
	default:
		return contribute(0, "Add more character types (e.g., symbols, numbers)", Warning)
	}
}
