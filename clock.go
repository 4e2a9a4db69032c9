package terrainbento

// Clock tracks model time over a fixed simulation period
type Clock struct {
	Start, Stop, Step float64
	t                 float64
}

// NewClock constructor
func NewClock(start, stop, step float64) *Clock {
	if stop < start || step <= 0. {
		panic("terrainbento.NewClock: invalid simulation period")
	}
	return &Clock{Start: start, Stop: stop, Step: step, t: start}
}

// Time current model time
func (c *Clock) Time() float64 { return c.t }

// NSteps number of whole steps needed to reach Stop from Start
func (c *Clock) NSteps() int {
	n := int((c.Stop - c.Start) / c.Step)
	if c.Start+float64(n)*c.Step < c.Stop {
		n++
	}
	return n
}

func (c *Clock) advance(dt float64) {
	if dt < 0. {
		panic("terrainbento.Clock: model time cannot be rewound")
	}
	c.t += dt
}
