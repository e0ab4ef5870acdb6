package game

const (
	counterClockwise = -1
	clockwise        = 1
)

// Cycler tracks whose turn it is over a fixed number of seats.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats int) *Cycler {
	return &Cycler{
		seats:     seats,
		current:   0,
		direction: clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Clockwise() bool {
	return c.direction == clockwise
}

func (c *Cycler) ForEach(function func(seat int)) {
	for seat := 0; seat < c.seats; seat++ {
		function(seat)
	}
}

// Peek returns the seat that Next would move to.
func (c *Cycler) Peek() int {
	return (c.current + c.direction + c.seats) % c.seats
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

// Skip passes over the next seat and returns it.
func (c *Cycler) Skip() int {
	return c.Next()
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case clockwise:
		c.direction = counterClockwise
	case counterClockwise:
		c.direction = clockwise
	}
}
